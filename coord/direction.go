package coord

import "fmt"

// Direction selects one of the four orthogonal lattice directions.
// Up and Down move along y, Left and Right along x; see
// Coordinate.OffsetDirection for the exact sign convention.
type Direction int

const (
	// Up increases y.
	Up Direction = iota
	// Down decreases y.
	Down
	// Left decreases x.
	Left
	// Right increases x.
	Right
)

// Directions lists all four orthogonal directions, in declaration order.
// Handy for neighbor sweeps: for _, d := range coord.Directions { ... }.
var Directions = [4]Direction{Up, Down, Left, Right}

// String returns the direction's name, or "Direction(n)" for values
// outside the declared range.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}
