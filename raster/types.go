// Package raster defines core types, connectivity policies, and
// sentinel errors for the raster subpackage of github.com/morpho-go/morpho.
package raster

import (
	"errors"
)

// Sentinel errors for raster operations.
var (
	// ErrEmptyGeometry indicates a geometry with no axes or a non-positive extent.
	ErrEmptyGeometry = errors.New("raster: geometry must have at least one axis with positive extent")
	// ErrRankMismatch indicates origin or spacing length differs from the size length.
	ErrRankMismatch = errors.New("raster: origin and spacing must match the number of axes")
	// ErrGeometryMismatch indicates two rasters differ in size, origin or spacing.
	ErrGeometryMismatch = errors.New("raster: rasters must share identical geometry")
	// ErrLengthMismatch indicates a pixel slice whose length differs from the geometry pixel count.
	ErrLengthMismatch = errors.New("raster: pixel slice length must equal the geometry pixel count")
	// ErrNilRaster indicates a nil raster passed to a transform.
	ErrNilRaster = errors.New("raster: raster must not be nil")
)

// Connectivity selects which neighboring index positions count as
// adjacent for component analysis: shared faces only, or shared
// faces, edges and vertices.
type Connectivity int

const (
	// Face connects cells sharing an (N−1)-dimensional face:
	// 4 neighbors in 2D, 6 in 3D, 2·N in general.
	Face Connectivity = iota
	// Full additionally connects through shared edges and vertices:
	// 8 neighbors in 2D, 26 in 3D, 3^N − 1 in general.
	Full
)

// String returns the connectivity name, "face" or "full".
func (c Connectivity) String() string {
	if c == Full {
		return "full"
	}
	return "face"
}

// Offsets returns the neighbor offset table for the given rank.
// Face yields one ±1 step per axis; Full yields every non-zero vector
// in {−1,0,+1}^rank. The order is deterministic: Face lists axis 0
// before axis 1 (−1 before +1); Full counts with axis 0 varying fastest.
//
// Complexity: O(rank) for Face, O(3^rank · rank) for Full.
func (c Connectivity) Offsets(rank int) [][]int {
	if rank <= 0 {
		return nil
	}
	if c == Face {
		out := make([][]int, 0, 2*rank)
		for axis := 0; axis < rank; axis++ {
			for _, step := range [2]int{-1, 1} {
				d := make([]int, rank)
				d[axis] = step
				out = append(out, d)
			}
		}
		return out
	}
	// Full: enumerate {−1,0,+1}^rank by counting in base 3, skip origin.
	total := 1
	for i := 0; i < rank; i++ {
		total *= 3
	}
	out := make([][]int, 0, total-1)
	for n := 0; n < total; n++ {
		d := make([]int, rank)
		zero := true
		m := n
		for i := 0; i < rank; i++ {
			d[i] = m%3 - 1
			m /= 3
			if d[i] != 0 {
				zero = false
			}
		}
		if zero {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Backward returns only the offsets that point to positions already
// visited by a row-major scan (axis 0 fastest): those whose
// highest-axis non-zero component is negative. Used by raster-scan
// labeling to restrict neighbor checks to labeled pixels.
func (c Connectivity) Backward(rank int) [][]int {
	all := c.Offsets(rank)
	out := make([][]int, 0, len(all)/2)
	for _, d := range all {
		for i := rank - 1; i >= 0; i-- {
			if d[i] == 0 {
				continue
			}
			if d[i] < 0 {
				out = append(out, d)
			}
			break
		}
	}
	return out
}

// Geometry describes a rectangular N-dimensional index region together
// with its physical placement. It is immutable once built.
type Geometry struct {
	size    []int
	origin  []float64
	spacing []float64
	strides []int
	pixels  int
}

// NewGeometry builds a Geometry from a per-axis size plus optional
// origin and spacing (nil defaults to origin 0 and spacing 1 on every
// axis). It deep-copies all inputs.
// Returns ErrEmptyGeometry for an empty size or a non-positive extent,
// ErrRankMismatch when a non-nil origin/spacing length differs from size.
func NewGeometry(size []int, origin, spacing []float64) (Geometry, error) {
	if len(size) == 0 {
		return Geometry{}, ErrEmptyGeometry
	}
	for _, n := range size {
		if n <= 0 {
			return Geometry{}, ErrEmptyGeometry
		}
	}
	if origin != nil && len(origin) != len(size) {
		return Geometry{}, ErrRankMismatch
	}
	if spacing != nil && len(spacing) != len(size) {
		return Geometry{}, ErrRankMismatch
	}
	rank := len(size)
	g := Geometry{
		size:    make([]int, rank),
		origin:  make([]float64, rank),
		spacing: make([]float64, rank),
		strides: make([]int, rank),
		pixels:  1,
	}
	copy(g.size, size)
	if origin != nil {
		copy(g.origin, origin)
	}
	if spacing != nil {
		copy(g.spacing, spacing)
	} else {
		for i := range g.spacing {
			g.spacing[i] = 1
		}
	}
	for i := 0; i < rank; i++ {
		g.strides[i] = g.pixels
		g.pixels *= size[i]
	}
	return g, nil
}

// Geom2D builds a 2D geometry of nx×ny pixels with default placement.
func Geom2D(nx, ny int) (Geometry, error) {
	return NewGeometry([]int{nx, ny}, nil, nil)
}

// Geom3D builds a 3D geometry of nx×ny×nz pixels with default placement.
func Geom3D(nx, ny, nz int) (Geometry, error) {
	return NewGeometry([]int{nx, ny, nz}, nil, nil)
}

// Rank returns the number of axes. Zero for the zero Geometry.
func (g Geometry) Rank() int { return len(g.size) }

// Pixels returns the total pixel count of the region.
func (g Geometry) Pixels() int { return g.pixels }

// Size returns a copy of the per-axis extents.
func (g Geometry) Size() []int {
	out := make([]int, len(g.size))
	copy(out, g.size)
	return out
}

// Origin returns a copy of the per-axis physical origin.
func (g Geometry) Origin() []float64 {
	out := make([]float64, len(g.origin))
	copy(out, g.origin)
	return out
}

// Spacing returns a copy of the per-axis physical spacing.
func (g Geometry) Spacing() []float64 {
	out := make([]float64, len(g.spacing))
	copy(out, g.spacing)
	return out
}

// Equal reports whether two geometries agree in size, origin and spacing.
func (g Geometry) Equal(o Geometry) bool {
	if len(g.size) != len(o.size) {
		return false
	}
	for i := range g.size {
		if g.size[i] != o.size[i] || g.origin[i] != o.origin[i] || g.spacing[i] != o.spacing[i] {
			return false
		}
	}
	return true
}

// Offset maps a coordinate to its row-major linear offset (axis 0 fastest).
// Coordinates are assumed in bounds; use InBounds to check first.
// Complexity: O(rank).
func (g Geometry) Offset(c []int) int {
	off := 0
	for i, x := range c {
		off += x * g.strides[i]
	}
	return off
}

// Coordinate maps a linear offset back to a per-axis coordinate.
// Complexity: O(rank).
func (g Geometry) Coordinate(off int) []int {
	c := make([]int, len(g.size))
	for i, n := range g.size {
		c[i] = off % n
		off /= n
	}
	return c
}

// InBounds reports whether the coordinate lies within the region.
func (g Geometry) InBounds(c []int) bool {
	if len(c) != len(g.size) {
		return false
	}
	for i, x := range c {
		if x < 0 || x >= g.size[i] {
			return false
		}
	}
	return true
}
