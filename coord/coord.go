package coord

import "fmt"

// Coordinate is an immutable point on the 2-D integer lattice.
// It is comparable and may be used directly as a map key.
type Coordinate struct {
	X, Y int
}

// New constructs the Coordinate (x, y).
// Complexity: O(1).
func New(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Add returns the component-wise sum c + o.
// Add and Sub form an abelian group: c.Add(o).Sub(o) == c for all c, o.
// Complexity: O(1).
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the component-wise difference c − o.
// Complexity: O(1).
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{X: c.X - o.X, Y: c.Y - o.Y}
}

// Offset returns c translated by (dx, dy).
// Complexity: O(1).
func (c Coordinate) Offset(dx, dy int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// WithX returns c with its X component replaced by x.
// Complexity: O(1).
func (c Coordinate) WithX(x int) Coordinate {
	return Coordinate{X: x, Y: c.Y}
}

// WithY returns c with its Y component replaced by y.
// Complexity: O(1).
func (c Coordinate) WithY(y int) Coordinate {
	return Coordinate{X: c.X, Y: y}
}

// Closest returns the coordinate one unit nearer to other, moving by
// sign(Δx) on x and sign(Δy) on y simultaneously. It is the diagonal
// stepping primitive behind Line: exact for horizontal, vertical and
// perfect 45° diagonal paths, diagonal-biased for everything else.
// Closest(c) == c, so a reached target is a fixed point.
// Complexity: O(1).
func (c Coordinate) Closest(other Coordinate) Coordinate {
	d := other.Sub(c)
	return Coordinate{X: c.X + sign(d.X), Y: c.Y + sign(d.Y)}
}

// OffsetDirection returns c moved amount units in direction d:
// Up adds to y, Down subtracts from y, Left subtracts from x, Right adds to x.
// Complexity: O(1).
func (c Coordinate) OffsetDirection(d Direction, amount int) Coordinate {
	switch d {
	case Up:
		return c.Offset(0, amount)
	case Down:
		return c.Offset(0, -amount)
	case Left:
		return c.Offset(-amount, 0)
	default: // Right
		return c.Offset(amount, 0)
	}
}

// ManhattanDistance returns |Δx| + |Δy| between c and other.
// Computed from absolute differences, so the result is never negative
// and symmetric: c.ManhattanDistance(o) == o.ManhattanDistance(c).
// Complexity: O(1).
func (c Coordinate) ManhattanDistance(other Coordinate) int {
	return absDiff(c.X, other.X) + absDiff(c.Y, other.Y)
}

// Less reports whether c precedes o in the lexicographic (X, then Y)
// total order. Useful for sorting coordinate slices deterministically.
// Complexity: O(1).
func (c Coordinate) Less(o Coordinate) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// String renders c as "(x, y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Bounds returns the component-wise minimum and maximum corners of the
// given coordinates, i.e. the smallest axis-aligned rectangle covering
// them all. ok is false when coords is empty.
// Complexity: O(n).
func Bounds(coords []Coordinate) (min, max Coordinate, ok bool) {
	if len(coords) == 0 {
		return Coordinate{}, Coordinate{}, false
	}
	min, max = coords[0], coords[0]
	for _, c := range coords[1:] {
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
	}

	return min, max, true
}

// sign returns -1, 0 or 1 according to the sign of v.
func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// absDiff returns |a−b| without intermediate negative values.
func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
