// Package plane is your in-memory toolkit for 2-D integer-lattice geometry:
// coordinates, digital lines, rectangles, and a sparse resizable grid.
//
// 🚀 What is plane?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• Coordinate algebra: add, subtract, offset, directional stepping
//		• Digital lines: lazy "closest point" walks between two lattice points
//		• Squares: lazy row-major enumeration of axis-aligned rectangles
//		• Grid[T]: a sparse, bounded, self-expanding 2-D store with a default value
//		• Structured out-of-bounds errors reporting each axis independently
//
// ✨ Why choose plane?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – no global state, repeatable enumeration order
//   - Pure Go – no cgo, no hidden deps
//   - Honest errors – bounded accessors return structured, recoverable errors;
//     resizing accessors never fail at all
//
// Everything is organized under two subpackages:
//
//	coord/ — Coordinate, Direction, Line and Square value types
//	grid/  — the generic Grid[T] store and its OutOfBounds error model
//
// Quick ASCII example:
//
//	    (0,0)───(4,0)
//	      │       │
//	    (0,3)───(4,3)
//
//	a 5×4 bounded rectangle; every cell inside is addressable, and unwritten
//	cells read back as the grid's empty value.
//
// The library is single-threaded by design: each Grid is exclusively owned
// by one caller. If you need concurrent access, synchronize externally or
// partition by disjoint coordinate ranges.
package plane
