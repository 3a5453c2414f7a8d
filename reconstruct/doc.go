// Package reconstruct implements binary morphological reconstruction:
// given a marker raster (seeds) and a mask raster (bounds) over the
// same N-dimensional geometry, it computes the raster whose foreground
// is exactly the union of the mask's connected components touched by
// at least one marker foreground pixel.
//
// What:
//
//   - Inputs names the two rasters explicitly (Marker, Mask), so the
//     classic reversed-input bug cannot arise from argument order.
//   - Options selects the connectivity policy and the
//     foreground/background value pair.
//   - Engine validates fail-fast and runs the staged pipeline:
//     complement both inputs, label the complemented mask, mark each
//     component seeded iff it intersects the complemented marker,
//     open away unseeded components, rasterize, complement back.
//   - MarkSeeded exposes the seed-attribute stage for custom
//     label-map pipelines.
//
// Why:
//
//   - The classical definition iterates geodesic erosion of the marker
//     against the mask until stability. Reconstruction can only grow a
//     seeded region until it fills its enclosing mask component and can
//     never cross a mask boundary, so the fixed point is decided
//     per component by seed membership. One labeling pass plus one
//     seed test replaces the unbounded iteration.
//
// The engine is a pure batch computation: single-threaded, no hidden
// state, every stage consumes immutable inputs and allocates a fresh
// output. Distinct invocations are fully isolated and may run
// concurrently. Because labeling is a global operation, the engine
// always consumes the entire extent of both inputs and produces the
// entire extent of its output; RequiresFullExtent declares this to
// hosting schedulers.
//
// Complexity: O(pixels · neighbors) time, O(pixels) memory.
//
// Errors:
//
//   - ErrNilMarker, ErrNilMask: Compute invoked before both inputs are set.
//   - ErrGeometryMismatch: marker and mask differ in size, origin or spacing.
//   - ErrBadValues: foreground and background coincide.
package reconstruct
