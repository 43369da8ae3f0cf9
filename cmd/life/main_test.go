//go:build ebiten

package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

func TestLoopErr(t *testing.T) {
	if err := loopErr(nil); err != nil {
		t.Fatalf("loopErr(nil) = %v", err)
	}
	if err := loopErr(ebiten.Termination); err != nil {
		t.Fatalf("termination reported as failure: %v", err)
	}
	if err := loopErr(errors.Wrap(ebiten.Termination, "update")); err != nil {
		t.Fatalf("wrapped termination reported as failure: %v", err)
	}
	boom := errors.New("boom")
	if err := loopErr(boom); !errors.Is(err, boom) {
		t.Fatalf("loopErr(boom) = %v", err)
	}
}
