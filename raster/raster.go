package raster

// Raster is an N-dimensional index-addressed pixel array over a fixed
// Geometry, stored as a flat row-major slice (axis 0 fastest). The
// pixel type is fixed per instantiation; geometry is immutable after
// construction.
type Raster[T comparable] struct {
	geom Geometry
	pix  []T
}

// New allocates a zero-filled raster over g.
// Returns ErrEmptyGeometry for the zero Geometry.
func New[T comparable](g Geometry) (*Raster[T], error) {
	if g.pixels == 0 {
		return nil, ErrEmptyGeometry
	}
	return &Raster[T]{geom: g, pix: make([]T, g.pixels)}, nil
}

// NewFilled allocates a raster over g with every pixel set to v.
func NewFilled[T comparable](g Geometry, v T) (*Raster[T], error) {
	r, err := New[T](g)
	if err != nil {
		return nil, err
	}
	for i := range r.pix {
		r.pix[i] = v
	}
	return r, nil
}

// FromSlice builds a raster over g from a flat row-major pixel slice.
// It deep-copies the input to ensure immutability.
// Returns ErrLengthMismatch when len(pix) differs from g.Pixels().
func FromSlice[T comparable](g Geometry, pix []T) (*Raster[T], error) {
	if g.pixels == 0 {
		return nil, ErrEmptyGeometry
	}
	if len(pix) != g.pixels {
		return nil, ErrLengthMismatch
	}
	r := &Raster[T]{geom: g, pix: make([]T, g.pixels)}
	copy(r.pix, pix)
	return r, nil
}

// Geometry returns the raster's index geometry.
func (r *Raster[T]) Geometry() Geometry { return r.geom }

// At returns the pixel at coordinate c. Coordinates are assumed in
// bounds; use Geometry().InBounds to check first. Complexity: O(rank).
func (r *Raster[T]) At(c []int) T { return r.pix[r.geom.Offset(c)] }

// Set writes the pixel at coordinate c. Complexity: O(rank).
func (r *Raster[T]) Set(c []int, v T) { r.pix[r.geom.Offset(c)] = v }

// AtOffset returns the pixel at a row-major linear offset. O(1).
func (r *Raster[T]) AtOffset(off int) T { return r.pix[off] }

// SetOffset writes the pixel at a row-major linear offset. O(1).
func (r *Raster[T]) SetOffset(off int, v T) { r.pix[off] = v }

// Pixels returns a copy of the flat pixel slice.
func (r *Raster[T]) Pixels() []T {
	out := make([]T, len(r.pix))
	copy(out, r.pix)
	return out
}

// Count returns the number of pixels equal to v. Complexity: O(pixels).
func (r *Raster[T]) Count(v T) int {
	n := 0
	for _, p := range r.pix {
		if p == v {
			n++
		}
	}
	return n
}

// Clone returns an independent deep copy of the raster.
func (r *Raster[T]) Clone() *Raster[T] {
	out := &Raster[T]{geom: r.geom, pix: make([]T, len(r.pix))}
	copy(out.pix, r.pix)
	return out
}

// EqualPixels reports whether o shares r's geometry and every pixel value.
func (r *Raster[T]) EqualPixels(o *Raster[T]) bool {
	if o == nil || !r.geom.Equal(o.geom) {
		return false
	}
	for i, p := range r.pix {
		if o.pix[i] != p {
			return false
		}
	}
	return true
}
