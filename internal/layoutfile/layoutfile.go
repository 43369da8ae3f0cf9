// Package layoutfile decodes initial board layouts written in HCL:
//
//	grid {
//	  width  = 140
//	  height = 85
//	}
//
//	place "glider" {
//	  x = 15
//	  y = 35
//	}
//
//	row "blinker" {
//	  count = 8
//	  x     = 10
//	  step  = 15
//	  y     = 30
//	}
//
// The grid block is optional. Rows expand to count placements spaced step
// columns apart.
package layoutfile

import (
	"context"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"

	"lifegrid/internal/ctxlog"
	"lifegrid/pkg/patterns"
)

// File is the decoded form of a layout file.
type File struct {
	Grid   *GridBlock   `hcl:"grid,block"`
	Places []PlaceBlock `hcl:"place,block"`
	Rows   []RowBlock   `hcl:"row,block"`
}

// GridBlock overrides the board size.
type GridBlock struct {
	Width  int `hcl:"width"`
	Height int `hcl:"height"`
}

// PlaceBlock stamps a single pattern.
type PlaceBlock struct {
	Pattern string `hcl:"pattern,label"`
	X       int    `hcl:"x"`
	Y       int    `hcl:"y"`
}

// RowBlock stamps count copies of a pattern along one row.
type RowBlock struct {
	Pattern string `hcl:"pattern,label"`
	Count   int    `hcl:"count"`
	X       int    `hcl:"x"`
	Y       int    `hcl:"y"`
	Step    int    `hcl:"step"`
}

// Parse decodes and validates layout source. filename is only used in
// diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hf, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("failed to parse layout %s: %s", filename, diags.Error())
	}

	var f File
	if diags := gohcl.DecodeBody(hf.Body, nil, &f); diags.HasErrors() {
		return nil, errors.Errorf("failed to decode layout %s: %s", filename, diags.Error())
	}
	if err := f.validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid layout %s", filename)
	}
	return &f, nil
}

// Load reads and parses the layout file at path.
func Load(ctx context.Context, path string) (*File, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding layout file.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read layout %s", path)
	}
	f, err := Parse(src, path)
	if err != nil {
		return nil, err
	}

	logger.Debug("Decoded layout file.", "path", path, "places", len(f.Places), "rows", len(f.Rows))
	return f, nil
}

func (f *File) validate() error {
	if f.Grid != nil && (f.Grid.Width <= 0 || f.Grid.Height <= 0) {
		return errors.Errorf("grid size %dx%d must be positive", f.Grid.Width, f.Grid.Height)
	}
	for _, r := range f.Rows {
		if r.Count < 0 {
			return errors.Errorf("row %q: negative count %d", r.Pattern, r.Count)
		}
	}
	return f.Layout().Validate()
}

// Layout expands the file into placements: single places first, then rows in
// file order.
func (f *File) Layout() patterns.Layout {
	var l patterns.Layout
	for _, p := range f.Places {
		l = append(l, patterns.Placement{Pattern: p.Pattern, X: p.X, Y: p.Y})
	}
	for _, r := range f.Rows {
		l = append(l, patterns.Row(r.Pattern, r.Count, r.X, r.Step, r.Y)...)
	}
	return l
}

// Size returns the grid block dimensions, or the defaults when the file has
// none.
func (f *File) Size(defW, defH int) (int, int) {
	if f.Grid == nil {
		return defW, defH
	}
	return f.Grid.Width, f.Grid.Height
}
