// Package life is a bounded Game of Life engine.
//
// Cells live on a fixed-size board whose edges are hard boundaries: anything
// outside the board reads as dead and writes to it are ignored. Each Step is
// computed from a stable view of the current generation into a second buffer,
// and the two buffers trade places once every cell has been evaluated.
package life

// Rule is the B3/S23 transition: a live cell survives with two or three live
// neighbors, a dead cell is born with exactly three.
func Rule(alive bool, neighbors int) bool {
	return (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
}
