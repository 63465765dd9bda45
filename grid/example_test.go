// File: grid/example_test.go
package grid_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/plane/coord"
	"github.com/katalvlaran/plane/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: building and displaying a wall map
////////////////////////////////////////////////////////////////////////////////

// Example demonstrates the typical construction pipeline: rasterize wall
// segments with Line, size the rectangle with Bounds, write the cells and
// dump the result.
// Scenario:
//
//   - Two wall segments: a horizontal run and a vertical drop.
//   - Empty cells render as '.', walls as '#'.
func Example() {
	walls := []coord.Line{
		coord.Horizontal(0, 0, 3),
		coord.Vertical(3, 0, 2),
	}
	var cells []coord.Coordinate
	for _, l := range walls {
		for c := range l.Coords() {
			cells = append(cells, c)
		}
	}

	min, max, _ := coord.Bounds(cells)
	g := grid.FromCoords(min, max, ".")
	for _, c := range cells {
		g.Set(c, "#")
	}
	g.Display(os.Stdout)
	// Output:
	// ####
	// ...#
	// ...#
}

////////////////////////////////////////////////////////////////////////////////
// Example: the three accessor families
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_SetResize contrasts bounded failure with silent growth.
// Scenario:
//
//   - A 3×3 grid over [(0,0),(2,2)].
//   - SetBounded outside the rectangle fails with a structured error.
//   - SetResize on the same coordinate grows the rectangle instead.
func ExampleGrid_SetResize() {
	g := grid.FromCoords(coord.New(0, 0), coord.New(2, 2), 0)

	err := g.SetBounded(coord.New(5, 5), 7)
	fmt.Println("bounded:", err)
	fmt.Println("is sentinel:", errors.Is(err, grid.ErrOutOfBounds))

	g.SetResize(coord.New(5, 5), 7)
	_, end := g.Bounds()
	fmt.Println("after resize, end:", end, "value:", g.Get(coord.New(5, 5)))
	// Output:
	// bounded: (5, 5) out of bounds: x=5 greater than 2, y=5 greater than 2
	// is sentinel: true
	// after resize, end: (5, 5) value: 7
}

////////////////////////////////////////////////////////////////////////////////
// Example: Manhattan area query
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_CoordsInArea collects the distance-1 diamond around the
// origin: the four orthogonal neighbors plus the center.
func ExampleGrid_CoordsInArea() {
	g := grid.FromCoords(coord.New(-2, -2), coord.New(2, 2), 0)
	n := 0
	for range g.CoordsInArea(coord.New(0, 0), 1, func(coord.Coordinate) bool { return true }) {
		n++
	}
	fmt.Println("points within distance 1:", n)
	// Output:
	// points within distance 1: 5
}
