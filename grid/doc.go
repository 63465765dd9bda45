// Package grid provides Grid[T], a sparse, bounded, resizable 2-D
// associative store keyed by coord.Coordinate, together with the
// structured OutOfBounds error model of its bounded accessors.
//
// What:
//
//   - FromCoords builds a grid covering the inclusive rectangle
//     [start, end] with a caller-supplied empty value; both corners are
//     seeded with that value.
//   - Three accessor families with distinct bounds contracts:
//     Get/Set (unchecked), GetBounded/SetBounded (validated, may return
//     *OutOfBounds), GetResize/SetResize (self-expanding, cannot fail).
//   - Row-major enumeration (Coords), fixed-axis slices (CoordsAtX,
//     CoordsAtY), a lazy Manhattan-diamond area query (CoordsInArea), and
//     a debugging dump (Display).
//
// Why:
//
//   - Simulation boards: falling particles, cellular fills, wall maps.
//   - Sparse universes: only written cells occupy memory; everything
//     in range reads back as the empty value.
//   - Growing worlds: the resizing accessors widen the rectangle on
//     demand, monotonically, without discarding contents.
//
// Storage model:
//
//	A native map[coord.Coordinate]T holds only explicitly written cells.
//	Map key ordering is never relied on: every enumeration is generated
//	row-major from the bounds, so iteration order is deterministic. The
//	sparse model was chosen over a dense flat array deliberately: it is
//	what permits resizing and the unchecked default-value read path; the
//	price is hashed lookup instead of O(1) indexing.
//
// Bounds semantics:
//
//   - Get never checks bounds: a coordinate outside [start, end] reads as
//     the empty value rather than failing. This is intentional
//     permissiveness for probing speculative coordinates before
//     committing, not an oversight; use GetBounded when you want the
//     rectangle enforced.
//   - Bounds only ever grow. The resizing accessors move the start or end
//     corner outward on the overflowing axis only; nothing shrinks them
//     back, and no other operation mutates them after construction.
//   - FromCoords does not validate start ≤ end; supplying inverted
//     corners is a caller precondition violation.
//
// Complexity (W×H = current rectangle, n = stored cells):
//
//   - Get/Set and both bounded/resizing variants: O(1) expected.
//   - Coords: O(W×H) time and memory. CoordsAtX/CoordsAtY: O(H) / O(W).
//   - CoordsInArea: lazily enumerates the (2d+1)² bounding square of the
//     Manhattan diamond and filters, O(d²) points, O(1) memory.
//
// Errors:
//
//   - ErrOutOfBounds: sentinel matched by errors.Is for every bounds
//     violation.
//   - *OutOfBounds: the concrete error, carrying the offending coordinate
//     and a per-axis Overflow record; recover it with errors.As.
//
// Grids are not safe for concurrent use; each instance is meant to be
// exclusively owned and mutated by a single caller.
package grid
