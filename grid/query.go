package grid

import (
	"iter"

	"github.com/katalvlaran/plane/coord"
)

// Coords materializes every coordinate of the current rectangle in
// row-major order (increasing y, then increasing x within each row),
// the same ordering contract as coord.Square. Deterministic and
// repeatable; never derived from map iteration.
// Complexity: O(W×H) time and memory.
func (g *Grid[T]) Coords() []coord.Coordinate {
	out := make([]coord.Coordinate, 0, g.Width()*g.Height())
	for c := range coord.NewSquare(g.start, g.end).Coords() {
		out = append(out, c)
	}

	return out
}

// CoordsAtX returns the full vertical run of the rectangle at column x,
// from start.Y to end.Y. Both computed endpoints are bounds-checked first,
// so a column outside the rectangle fails with *OutOfBounds. The error
// originates from the endpoint check, never from partial clipping.
// Complexity: O(H).
func (g *Grid[T]) CoordsAtX(x int) ([]coord.Coordinate, error) {
	start := g.start.WithX(x)
	end := g.end.WithX(x)
	if err := g.checkBounds(start); err != nil {
		return nil, err
	}
	if err := g.checkBounds(end); err != nil {
		return nil, err
	}

	return collect(coord.NewLine(start, end).Coords(), g.Height()), nil
}

// CoordsAtY returns the full horizontal run of the rectangle at row y,
// from start.X to end.X, with the same endpoint-checked failure mode as
// CoordsAtX.
// Complexity: O(W).
func (g *Grid[T]) CoordsAtY(y int) ([]coord.Coordinate, error) {
	start := g.start.WithY(y)
	end := g.end.WithY(y)
	if err := g.checkBounds(start); err != nil {
		return nil, err
	}
	if err := g.checkBounds(end); err != nil {
		return nil, err
	}

	return collect(coord.NewLine(start, end).Coords(), g.Width()), nil
}

// CoordsInArea returns a lazy sequence of every coordinate within
// Manhattan distance of center that also satisfies filter. It enumerates
// the minimal bounding square of the Manhattan diamond (corners at
// center.Offset(-distance, +distance) and center.Offset(+distance,
// -distance)) and keeps the points passing both the filter and the
// distance cut. The square over-covers the diamond roughly 2×; simplicity
// over tightness. The sequence is independent of the grid's rectangle.
// Complexity: O(distance²) points, O(1) memory.
func (g *Grid[T]) CoordsInArea(center coord.Coordinate, distance int, filter func(coord.Coordinate) bool) iter.Seq[coord.Coordinate] {
	min := center.Offset(-distance, distance)
	max := center.Offset(distance, -distance)
	square := coord.NewSquare(min, max)

	return func(yield func(coord.Coordinate) bool) {
		for c := range square.Coords() {
			if !filter(c) || c.ManhattanDistance(center) > distance {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// collect drains a coordinate sequence into a slice of known capacity.
func collect(seq iter.Seq[coord.Coordinate], capacity int) []coord.Coordinate {
	out := make([]coord.Coordinate, 0, capacity)
	for c := range seq {
		out = append(out, c)
	}

	return out
}
