// Package terrain50 turns OS Terrain 50 style elevation tiles into one
// combined elevation grid and classifies its flat regions — the contiguous
// constant-altitude areas that usually mark water (lakes, estuaries, slow
// rivers) rather than land relief.
//
// 🚀 What is terrain50?
//
//	A small, focused library that brings together:
//		• asc       — parse a single elevation tile (5-line header + samples),
//		              discover tiles in plain or zipped dataset layouts,
//		              memoize parsed tiles in a caller-owned cache
//		• assemble  — stitch a lattice of tiles into one mosaic grid with
//		              per-tile status and min/max statistics
//		• flatness  — the flat-region detector: seed classification plus
//		              iterative frontier growth over the mosaic
//		• dem       — shared grid primitives: the south-up Grid value type,
//		              the NoAltitude sentinel and tolerance equality
//
// ✨ Why choose terrain50?
//
//   - Pure functions – the detector never mutates its input grid
//   - Per-tile fault isolation – one malformed tile never aborts the mosaic
//   - Tunable – tolerance, worker count and growth fallback via options
//   - Honest statuses – "no land here" and "bad data" are distinct results
//
// Data flows strictly forward:
//
//	asc.Loader ──▶ assemble.Assemble ──▶ flatness.Detect ──▶ your renderer
//
// Quick ASCII sketch of a detection run on a uniform 5×5 grid:
//
//	. . . . .        2 2 2 2 2
//	. * * * .        2 1 1 1 2
//	. * * * .   ──▶  2 1 1 1 2
//	. * * * .        2 1 1 1 2
//	. . . . .        2 2 2 2 2
//
// interior cells (*) seed the region, the border is reached by growth.
//
//	go get github.com/katalvlaran/terrain50
package terrain50
