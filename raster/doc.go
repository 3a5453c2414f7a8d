// Package raster provides N-dimensional index-addressed pixel arrays
// and the adjacency policies used by component labeling.
//
// What:
//
//   - Geometry describes a rectangular index region: per-axis size,
//     physical origin and spacing, with row-major strides (axis 0 fastest).
//   - Raster[T] wraps a flat pixel slice over a Geometry, with
//     coordinate and linear-offset accessors.
//   - Connectivity selects face adjacency (2·N neighbors) or full
//     adjacency (3^N − 1 neighbors) and generates offset tables.
//   - Complement swaps a foreground/background value pair, leaving any
//     other pixel value untouched.
//
// Why:
//
//   - Morphological operators need one geometry model shared by every
//     stage, so that marker/mask mismatches are caught before any
//     computation runs.
//   - Labeling and region growing are defined entirely by the
//     connectivity policy; keeping offset generation here keeps the
//     algorithms above dimension-agnostic.
//
// Complexity:
//
//   - At/Set/Offset/Coordinate: O(rank).
//   - Connectivity.Offsets: O(3^rank · rank) worst case (Full).
//   - Complement: O(pixels).
//
// Errors:
//
//   - ErrEmptyGeometry: geometry has no axes or a non-positive extent.
//   - ErrRankMismatch: origin/spacing length differs from size length.
//   - ErrGeometryMismatch: two rasters differ in size, origin or spacing.
//   - ErrLengthMismatch: pixel slice length does not match the geometry.
//   - ErrNilRaster: a nil raster was passed to a transform.
package raster
