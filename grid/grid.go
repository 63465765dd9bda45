package grid

import (
	"github.com/katalvlaran/plane/coord"
)

// Grid is a sparse, bounded, resizable 2-D store of T keyed by Coordinate.
// Only explicitly written cells occupy the map; any other coordinate reads
// back as the empty value. The rectangle [start, end] is inclusive on both
// corners and only ever grows (see the resizing accessors).
type Grid[T any] struct {
	points map[coord.Coordinate]T
	start  coord.Coordinate
	end    coord.Coordinate
	empty  T
}

// FromCoords builds a Grid covering the inclusive rectangle [start, end]
// with the given empty value. Both corners are pre-seeded with empty.
//
// Precondition: start.X ≤ end.X and start.Y ≤ end.Y. The corners are not
// validated or normalized; inverted corners are a caller error.
// Complexity: O(1).
func FromCoords[T any](start, end coord.Coordinate, empty T) *Grid[T] {
	points := make(map[coord.Coordinate]T)
	points[start] = empty
	points[end] = empty

	return &Grid[T]{
		points: points,
		start:  start,
		end:    end,
		empty:  empty,
	}
}

// Bounds returns the rectangle's start and end corners.
// Complexity: O(1).
func (g *Grid[T]) Bounds() (start, end coord.Coordinate) {
	return g.start, g.end
}

// Width returns end.X − start.X + 1. Recomputed from the corners on every
// call so it can never go stale after a resize.
// Complexity: O(1).
func (g *Grid[T]) Width() int {
	return g.end.X - g.start.X + 1
}

// Height returns end.Y − start.Y + 1, recomputed like Width.
// Complexity: O(1).
func (g *Grid[T]) Height() int {
	return g.end.Y - g.start.Y + 1
}

// Len returns the number of explicitly stored cells, including the two
// corners seeded at construction. Diagnostic for the sparse model.
// Complexity: O(1).
func (g *Grid[T]) Len() int {
	return len(g.points)
}

// Get returns the value stored at c, or the empty value when c was never
// written. Get never checks bounds: a coordinate outside the rectangle
// still returns empty rather than failing. This is the deliberate sparse
// default read path; use GetBounded to have the rectangle enforced.
// Complexity: O(1) expected.
func (g *Grid[T]) Get(c coord.Coordinate) T {
	if v, ok := g.points[c]; ok {
		return v
	}
	return g.empty
}

// Set stores val at c unconditionally, regardless of bounds.
// Complexity: O(1) expected.
func (g *Grid[T]) Set(c coord.Coordinate, val T) {
	g.points[c] = val
}

// GetBounded validates c against the rectangle, then reads like Get.
// Returns a *OutOfBounds (matching ErrOutOfBounds) when c lies outside.
// Complexity: O(1) expected.
func (g *Grid[T]) GetBounded(c coord.Coordinate) (T, error) {
	if err := g.checkBounds(c); err != nil {
		return g.empty, err
	}
	return g.Get(c), nil
}

// SetBounded validates c against the rectangle, then writes like Set.
// Returns a *OutOfBounds (matching ErrOutOfBounds) when c lies outside.
// Complexity: O(1) expected.
func (g *Grid[T]) SetBounded(c coord.Coordinate, val T) error {
	if err := g.checkBounds(c); err != nil {
		return err
	}
	g.Set(c, val)

	return nil
}

// GetResize reads like Get, but first grows the rectangle to include c if
// it lies outside. Cannot fail.
// Complexity: O(1) expected.
func (g *Grid[T]) GetResize(c coord.Coordinate) T {
	g.checkAndResize(c)
	return g.Get(c)
}

// SetResize writes like Set, but first grows the rectangle to include c if
// it lies outside. Together with GetResize this is the only way bounds
// change after construction. Cannot fail.
// Complexity: O(1) expected.
func (g *Grid[T]) SetResize(c coord.Coordinate, val T) {
	g.checkAndResize(c)
	g.Set(c, val)
}

// checkBounds classifies each axis of c independently against the
// rectangle: OverflowSmaller(start bound) when c precedes start,
// OverflowLarger(end bound) when c exceeds end, OverflowNone otherwise.
// Returns nil when both axes are in range, else a *OutOfBounds carrying
// both classifications.
// Complexity: O(1).
func (g *Grid[T]) checkBounds(c coord.Coordinate) *OutOfBounds {
	var xo, yo Overflow
	if c.X < g.start.X {
		xo = Overflow{Kind: OverflowSmaller, Bound: g.start.X}
	} else if c.X > g.end.X {
		xo = Overflow{Kind: OverflowLarger, Bound: g.end.X}
	}
	if c.Y < g.start.Y {
		yo = Overflow{Kind: OverflowSmaller, Bound: g.start.Y}
	} else if c.Y > g.end.Y {
		yo = Overflow{Kind: OverflowLarger, Bound: g.end.Y}
	}

	if xo.Kind == OverflowNone && yo.Kind == OverflowNone {
		return nil
	}

	return &OutOfBounds{Coord: c, X: xo, Y: yo}
}

// checkAndResize grows the rectangle so that c falls inside it: a Larger
// overflow moves that axis's end to c, a Smaller overflow moves that
// axis's start. The opposite corner is untouched, so bounds grow
// monotonically. Width and Height are derived from the corners on demand,
// never cached, so they follow automatically.
// Complexity: O(1).
func (g *Grid[T]) checkAndResize(c coord.Coordinate) {
	err := g.checkBounds(c)
	if err == nil {
		return
	}
	switch err.X.Kind {
	case OverflowLarger:
		g.end.X = c.X
	case OverflowSmaller:
		g.start.X = c.X
	}
	switch err.Y.Kind {
	case OverflowLarger:
		g.end.Y = c.Y
	case OverflowSmaller:
		g.start.Y = c.Y
	}
}
