package grid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/plane/coord"
)

// ErrOutOfBounds is the sentinel behind every bounds violation; match it
// with errors.Is. The concrete *OutOfBounds carries per-axis detail.
var ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

// OverflowKind classifies how a coordinate relates to one axis of the
// rectangle: inside, past the end, or before the start.
type OverflowKind int

const (
	// OverflowNone means the coordinate is within bounds on this axis.
	OverflowNone OverflowKind = iota
	// OverflowLarger means the coordinate exceeds the rectangle's end bound.
	OverflowLarger
	// OverflowSmaller means the coordinate precedes the rectangle's start bound.
	OverflowSmaller
)

// Overflow records at most one exceeded boundary on a single axis.
// Bound is the boundary value that was exceeded; it is meaningless when
// Kind is OverflowNone.
type Overflow struct {
	Kind  OverflowKind
	Bound int
}

// OutOfBounds reports a coordinate falling outside a grid's rectangle,
// with each axis classified independently. It is only constructed when at
// least one axis overflows; the other axis may legitimately be
// OverflowNone.
type OutOfBounds struct {
	Coord coord.Coordinate
	X, Y  Overflow
}

// Error renders the offending coordinate and every overflowing axis, e.g.
// "(5, 5) out of bounds: x=5 greater than 2, y=5 greater than 2".
func (e *OutOfBounds) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s out of bounds:", e.Coord)
	sep := " "
	if s := axisMessage("x", e.Coord.X, e.X); s != "" {
		b.WriteString(sep + s)
		sep = ", "
	}
	if s := axisMessage("y", e.Coord.Y, e.Y); s != "" {
		b.WriteString(sep + s)
	}

	return b.String()
}

// Unwrap ties the structured error to the ErrOutOfBounds sentinel so that
// errors.Is(err, ErrOutOfBounds) holds.
func (e *OutOfBounds) Unwrap() error {
	return ErrOutOfBounds
}

// axisMessage formats one axis segment, or "" when the axis did not overflow.
func axisMessage(axis string, value int, o Overflow) string {
	switch o.Kind {
	case OverflowLarger:
		return fmt.Sprintf("%s=%d greater than %d", axis, value, o.Bound)
	case OverflowSmaller:
		return fmt.Sprintf("%s=%d smaller than %d", axis, value, o.Bound)
	default:
		return ""
	}
}
