package coord_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plane/coord"
)

// drainSquare collects a square's lazy sequence into a slice.
func drainSquare(s coord.Square) []coord.Coordinate {
	var out []coord.Coordinate
	for c := range s.Coords() {
		out = append(out, c)
	}
	return out
}

// TestSquareRowMajor pins the exact row-major order of a 3×2 rectangle.
func TestSquareRowMajor(t *testing.T) {
	got := drainSquare(coord.NewSquare(coord.New(0, 0), coord.New(2, 1)))
	want := []coord.Coordinate{
		coord.New(0, 0), coord.New(1, 0), coord.New(2, 0),
		coord.New(0, 1), coord.New(1, 1), coord.New(2, 1),
	}
	require.Equal(t, want, got)
}

// TestSquareCount verifies the (W×H) cardinality and uniqueness on a
// rectangle away from the origin.
func TestSquareCount(t *testing.T) {
	got := drainSquare(coord.NewSquare(coord.New(-1, 2), coord.New(2, 4)))
	require.Len(t, got, 12) // 4 wide × 3 tall

	seen := make(map[coord.Coordinate]bool, len(got))
	for _, c := range got {
		require.False(t, seen[c], "coordinate %s yielded twice", c)
		seen[c] = true
	}
}

// TestSquareSingleCell checks the degenerate 1×1 rectangle.
func TestSquareSingleCell(t *testing.T) {
	got := drainSquare(coord.NewSquare(coord.New(5, 5), coord.New(5, 5)))
	require.Equal(t, []coord.Coordinate{coord.New(5, 5)}, got)
}

// TestSquareEarlyStop verifies that a consumer may stop the enumeration
// mid-row without draining the rest.
func TestSquareEarlyStop(t *testing.T) {
	s := coord.NewSquare(coord.New(0, 0), coord.New(9, 9))
	n := 0
	for range s.Coords() {
		n++
		if n == 15 {
			break
		}
	}
	require.Equal(t, 15, n)
}
