// Package morpho is a binary mathematical-morphology toolkit built on
// a sparse label-map representation of connected components.
//
// 🚀 What is morpho?
//
//	A pure-Go library for N-dimensional binary rasters that brings together:
//		• Rasters: index-addressed pixel arrays with explicit geometry
//		  (size, origin, spacing) and row-major linear addressing
//		• Connectivity policies: face adjacency (2·N neighbors) or full
//		  adjacency (3^N − 1 neighbors), any dimension
//		• Labeling: two-pass connected-component extraction into a
//		  run-length-encoded, attributed label map
//		• Attribute openings: discard components failing a predicate
//		• Reconstruction: marker/mask morphological reconstruction as a
//		  single labeling pass instead of iterated erosion
//
// ✨ Why choose morpho?
//
//   - Dimension-agnostic – the same engine runs on 2D images and 3D volumes
//   - Fail-fast guarantees – geometry mismatches surface before any stage runs
//   - Pure batch stages – immutable inputs, fresh outputs, safely re-entrant
//   - Extensible – label objects carry a typed attribute, so size and shape
//     openings reuse the same machinery as seeded reconstruction
//
// Under the hood, everything is organized under four subpackages:
//
//	raster/      — geometry, N-D binary rasters, connectivity, complement
//	labelmap/    — run-length label objects, labelizer, opening, rasterizer
//	reconstruct/ — the marker/mask reconstruction engine
//	config/      — YAML settings for the engine
//
// Quick ASCII example:
//
//	mask:  ###..#      marker: .#....      output: ###...
//	       ###..#              ......              ###...
//
//	one seed pixel keeps the left component, the unseeded right
//	component is opened away.
//
//	go get github.com/morpho-go/morpho
package morpho
