package coord

import "iter"

// Square describes an inclusive axis-aligned rectangle
// [Min.X, Max.X] × [Min.Y, Max.Y]. The invariant Min.X ≤ Max.X and
// Min.Y ≤ Max.Y is the caller's responsibility and is not checked.
type Square struct {
	Min, Max Coordinate
}

// NewSquare constructs the rectangle spanning min to max.
// Complexity: O(1).
func NewSquare(min, max Coordinate) Square {
	return Square{Min: min, Max: max}
}

// Coords returns a lazy sequence of every coordinate inside the rectangle
// in row-major order: increasing y, and within each row increasing x. The
// outer walk is the vertical line Min → (Min.X, Max.Y); each of its points
// anchors a horizontal row line to Max.X. Yields (W×H) coordinates, each
// exactly once.
// Complexity: O(W×H) points, O(1) memory.
func (s Square) Coords() iter.Seq[Coordinate] {
	col := NewLine(s.Min, s.Min.WithY(s.Max.Y))
	return func(yield func(Coordinate) bool) {
		for anchor := range col.Coords() {
			row := NewLine(anchor, anchor.WithX(s.Max.X))
			for c := range row.Coords() {
				if !yield(c) {
					return
				}
			}
		}
	}
}
