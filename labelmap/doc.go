// Package labelmap provides a sparse, attributed, per-component
// representation of a labeled raster, plus the operations that build,
// filter and rasterize it.
//
// What:
//
//   - Run is a run-length-encoded span of linear offsets along axis 0.
//   - Object[A] is one connected component: a unique label, its runs,
//     and one attribute of kind A (bool for reconstruction, numeric
//     for size/shape openings).
//   - Map[A] is the ordered collection of objects over one geometry.
//   - Labelize extracts maximal connected components of a foreground
//     value under a raster.Connectivity policy, using two-pass
//     raster-scan labeling with union-find label merging.
//   - Filter implements attribute opening: objects failing a predicate
//     are merged into background.
//   - Rasterize converts a map back into a raster.
//   - ComputeSizeStats summarizes component pixel counts.
//
// Why:
//
//   - For sparse foreground, a label map costs O(components + runs)
//     instead of O(pixels), and component-level operations (seed tests,
//     openings) become single passes over runs.
//
// Invariants:
//
//   - Objects never overlap; every foreground pixel of the source
//     raster belongs to exactly one object, the rest is background.
//   - Runs never cross an axis-0 row boundary.
//   - Labels are assigned 1..k in first-encounter scan order. The
//     numbering is deterministic but not contractual: callers may rely
//     on membership only, never on a particular numeric label.
//
// Complexity:
//
//   - Labelize: O(pixels · neighbors) time, O(pixels) memory.
//   - Filter, Rasterize, ComputeSizeStats: O(runs + kept pixels).
//
// Errors:
//
//   - ErrNilRaster: a nil raster was passed to Labelize.
//   - ErrNilMap: a nil map was passed to a transform.
package labelmap
