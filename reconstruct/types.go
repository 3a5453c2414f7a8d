// Package reconstruct defines inputs, options, and sentinel errors for
// the reconstruct subpackage of github.com/morpho-go/morpho.
package reconstruct

import (
	"errors"

	"github.com/morpho-go/morpho/raster"
)

// Sentinel errors for reconstruction, surfaced before any stage runs.
var (
	// ErrNilMarker indicates Compute was invoked without a marker raster.
	ErrNilMarker = errors.New("reconstruct: marker input is not set")
	// ErrNilMask indicates Compute was invoked without a mask raster.
	ErrNilMask = errors.New("reconstruct: mask input is not set")
	// ErrGeometryMismatch indicates marker and mask differ in index geometry.
	ErrGeometryMismatch = errors.New("reconstruct: marker and mask must share identical geometry")
	// ErrBadValues indicates coinciding foreground and background values.
	ErrBadValues = errors.New("reconstruct: foreground and background values must differ")
)

// Inputs carries the two named rasters of a reconstruction. Both are
// required and must share identical geometry. The fields are named
// rather than positional: swapping marker and mask silently changes
// the result, so the API refuses to let order decide.
type Inputs[T comparable] struct {
	// Marker is the seed raster: reconstruction keeps exactly the mask
	// components containing at least one marker foreground pixel.
	Marker *raster.Raster[T]
	// Mask bounds the reconstruction: no output foreground ever lies
	// outside it.
	Mask *raster.Raster[T]
}

// Options configures a reconstruction engine. Immutable per invocation.
type Options[T comparable] struct {
	// Connectivity is the adjacency rule for mask component extraction.
	Connectivity raster.Connectivity
	// Foreground is the value treated as foreground in both inputs and
	// written for kept components in the output.
	Foreground T
	// Background is the value written everywhere else in the output.
	Background T
}

// DefaultOptions returns the uint8 defaults: face connectivity (the
// conventional default; switch to Full for structures one pixel wide),
// foreground 255, background 0.
func DefaultOptions() Options[uint8] {
	return Options[uint8]{
		Connectivity: raster.Face,
		Foreground:   255,
		Background:   0,
	}
}
