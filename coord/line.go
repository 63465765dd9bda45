package coord

import (
	"fmt"
	"iter"
)

// Line describes the path between two lattice points. It is a value
// describing the walk, not a stored structure: consume it through Coords.
type Line struct {
	Start, End Coordinate
}

// NewLine constructs the line from start to end.
// Complexity: O(1).
func NewLine(start, end Coordinate) Line {
	return Line{Start: start, End: end}
}

// Horizontal constructs the horizontal line at height y running from
// xStart to xEnd.
// Complexity: O(1).
func Horizontal(y, xStart, xEnd int) Line {
	return Line{Start: New(xStart, y), End: New(xEnd, y)}
}

// Vertical constructs the vertical line at column x running from
// yStart to yEnd.
// Complexity: O(1).
func Vertical(x, yStart, yEnd int) Line {
	return Line{Start: New(x, yStart), End: New(x, yEnd)}
}

// Coords returns a lazy sequence of every lattice point on the walk from
// Start to End. The first element is Start; each subsequent element is
// current.Closest(End); the sequence ends the first time the cursor reaches
// End, and that terminal point is yielded exactly once.
//
// For horizontal, vertical and perfect 45° diagonal lines this visits every
// integer point between the ends inclusive, max(|Δx|,|Δy|)+1 in total. For
// a mixed line (|Δx| ≠ |Δy|, not axis-aligned) the walk runs diagonally
// until one axis is exhausted, then straight. This is the intended
// "closest point" semantics, not a general Bresenham rasterization.
//
// Each call to Coords restarts the walk from Start.
// Complexity: O(max(|Δx|,|Δy|)) points, O(1) memory.
func (l Line) Coords() iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		cur := l.Start
		for {
			if !yield(cur) {
				return
			}
			if cur == l.End {
				return
			}
			cur = cur.Closest(l.End)
		}
	}
}

// String renders l as "start -> end".
func (l Line) String() string {
	return fmt.Sprintf("%s -> %s", l.Start, l.End)
}
