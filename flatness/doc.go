// Package flatness classifies the cells of an elevation grid into flat
// regions — contiguous areas of effectively constant altitude, a useful
// heuristic for water (lakes, estuaries, slow rivers) versus land relief.
//
// What:
//
//   - Detect consumes a read-only dem.Grid and produces a same-shaped grid
//     of CellStatus values in two phases.
//   - Phase 1, seeding: a cell whose sample is dem.NoAltitude is a Seed
//     outright. Any other cell is compared against its Moore neighborhood;
//     out-of-bounds neighbors count as "different", and the scan bails out
//     as soon as more than two neighbors are absent or different. Only an
//     interior cell with at least 6 of its 8 neighbors at the same altitude
//     becomes a Seed — corner cells (5 missing neighbors) and edge cells
//     (3 missing) can never qualify, whatever their values.
//   - Phase 2, growth: starting from the seeds, every unassigned Moore
//     neighbor within tolerance of a frontier cell becomes Extended and
//     joins the next frontier, until a pass adds nothing. An optional
//     fallback then rescans the whole grid once before terminating (see
//     WithRescanFallback).
//
// Why:
//
//   - Altitude data alone cannot say "water", but a large perfectly flat
//     patch almost always is; seeding strictly (6 of 8) and growing
//     tolerantly (any one matching neighbor) keeps isolated flat specks out
//     while still capturing ragged shorelines.
//
// Equality is |a-b| < tolerance (default 0.01 m, see WithTolerance). The
// predicate is not transitive: a chain of adjacent samples drifting by less
// than the tolerance per step can connect cells whose altitudes differ by
// far more. This is an inherent property of tolerance-based region growing.
//
// Concurrency:
//
//   - Detect itself is synchronous and safe for concurrent use on shared
//     grids (it never mutates its input).
//   - WithWorkers(n) parallelizes Phase 1 across disjoint row bands; each
//     worker reads the immutable input and writes only its own status rows.
//     Phase 2 always runs single-threaded, preserving the pass-by-pass
//     frontier semantics.
//
// Complexity:
//
//   - Phase 1: O(rows×cols) — at most 8 comparisons per cell.
//   - Phase 2: O(rows×cols) cells ever enter a frontier; each is processed
//     once per membership. The fallback rescan adds one O(rows×cols) pass.
//   - Memory: O(rows×cols) for the status grid plus the frontiers.
//
// Options:
//
//   - WithTolerance(t): custom equality tolerance in metres (t > 0).
//   - WithWorkers(n): Phase 1 parallelism; 0 or 1 means serial.
//   - WithRescanFallback(on): keep or drop the post-exhaustion full-grid
//     rescan (default on, matching the reference behaviour; the rescan is
//     redundant for a frontier that grew from at least one seed).
//
// Errors:
//
//   - ErrOptionViolation: an invalid Option value was supplied. Detect has
//     no other failure mode; a degenerate 0×0 grid yields an empty Result.
package flatness
