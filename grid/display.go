package grid

import (
	"fmt"
	"io"
)

// Display writes the rectangle to w row-major, one line per row: every
// cell is rendered with fmt's %v verb and a newline is inserted after each
// Width cells. Purely a debugging aid; the output format is not part of
// the functional contract.
// Complexity: O(W×H).
func (g *Grid[T]) Display(w io.Writer) {
	width := g.Width()
	for i, c := range g.Coords() {
		fmt.Fprintf(w, "%v", g.Get(c))
		if (i+1)%width == 0 {
			fmt.Fprintln(w)
		}
	}
}
