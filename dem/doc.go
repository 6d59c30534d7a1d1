// Package dem provides the shared primitives every terrain50 package builds
// on: the south-up elevation Grid value type, the NoAltitude sentinel and
// the tolerance-based altitude equality predicate.
//
// What:
//
//   - Grid wraps a rectangular [][]float64 of elevation samples in metres,
//     indexed [row, col] with row 0 = south edge and col 0 = west edge.
//     It is deep-copied on construction and immutable afterwards.
//   - NoAltitude (-1000.0) stands in wherever no real measurement exists:
//     off-grid padding, sea tiles, failed tiles.
//   - SameAltitude reports whether two samples are "the same" for flatness
//     purposes: |a-b| < 0.01 m. The predicate is symmetric and reflexive but
//     not transitive — chains of slightly drifting neighbours can connect
//     samples that differ by far more than the tolerance. That is an
//     inherent property of tolerance-based region growing, not a defect.
//
// Why:
//
//   - One grid orientation for the whole module: parsers flip file order
//     once, and every consumer can rely on row 0 being the southernmost row.
//   - One sentinel and one equality rule keep the flatness semantics in a
//     single place instead of scattered magic numbers.
//
// Complexity:
//
//   - NewGrid / Clone / Values: O(rows×cols) time and memory (deep copy).
//   - At / InBounds: O(1).
//   - MinMax: O(rows×cols).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrRaggedGrid: rows have differing lengths.
package dem
