// Package coord provides the value types of the integer lattice: Coordinate,
// Direction, Line and Square.
//
// What:
//
//   - Coordinate is an immutable (X, Y) integer point with component-wise
//     arithmetic, axis replacement, directional offsets, the Closest stepping
//     primitive, and Manhattan distance.
//   - Direction enumerates the four orthogonal directions (Up, Down, Left, Right).
//   - Line walks every lattice point between two coordinates using repeated
//     Closest steps: exact for horizontal, vertical and perfect 45° diagonal
//     paths, diagonal-then-straight for everything else.
//   - Square enumerates an inclusive axis-aligned rectangle in row-major order.
//
// Why:
//
//   - Map keys: Coordinate is comparable, so it keys native Go maps directly.
//   - Rasterizing paths: wall segments, beams, scan rows.
//   - Area sweeps: Square gives deterministic row-major coverage.
//
// Semantics:
//
//   - Closest moves one unit toward the target on both axes simultaneously
//     (sign of the delta per axis). Line therefore is a "closest point" walk,
//     not a general Bresenham rasterizer; for a mixed line (|Δx| ≠ |Δy|, not
//     axis-aligned) the path runs diagonally first, then straight.
//   - Line.Coords and Square.Coords return lazy iter.Seq sequences; each call
//     restarts the walk from the beginning.
//
// Complexity:
//
//   - All Coordinate operations: O(1).
//   - Line.Coords: O(max(|Δx|,|Δy|)) points, O(1) memory.
//   - Square.Coords: O(W×H) points, O(1) memory.
//
// No errors are produced anywhere in this package: every operation is a pure
// value computation.
package coord
