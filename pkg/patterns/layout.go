package patterns

import "github.com/pkg/errors"

// ErrUnknownPattern is returned when a layout names a pattern missing from the
// catalog.
var ErrUnknownPattern = errors.New("patterns: unknown pattern")

// Placement puts one named pattern at an origin.
type Placement struct {
	Pattern string
	X, Y    int
}

// Layout is an ordered list of placements describing an initial board.
type Layout []Placement

// Row places count copies of a pattern along y, starting at x and advancing
// step columns each time.
func Row(pattern string, count, x, step, y int) Layout {
	if count <= 0 {
		return nil
	}
	l := make(Layout, count)
	for i := range l {
		l[i] = Placement{Pattern: pattern, X: x + i*step, Y: y}
	}
	return l
}

// Concat joins layouts in order.
func Concat(layouts ...Layout) Layout {
	var out Layout
	for _, l := range layouts {
		out = append(out, l...)
	}
	return out
}

// Validate checks that every placement names a catalog pattern.
func (l Layout) Validate() error {
	for i, p := range l {
		if _, ok := catalog[p.Pattern]; !ok {
			return errors.Wrapf(ErrUnknownPattern, "placement %d: %q", i, p.Pattern)
		}
	}
	return nil
}

// Apply stamps every placement onto g. Nothing is written when the layout
// fails validation.
func (l Layout) Apply(g Setter) error {
	if err := l.Validate(); err != nil {
		return err
	}
	for _, p := range l {
		Stamp(g, catalog[p.Pattern], p.X, p.Y)
	}
	return nil
}
