// Package labelmap defines core types and sentinel errors for the
// labelmap subpackage of github.com/morpho-go/morpho.
package labelmap

import (
	"errors"

	"github.com/morpho-go/morpho/raster"
)

// Sentinel errors for labelmap operations.
var (
	// ErrNilRaster indicates a nil raster passed to Labelize.
	ErrNilRaster = errors.New("labelmap: raster must not be nil")
	// ErrNilMap indicates a nil map passed to a transform.
	ErrNilMap = errors.New("labelmap: map must not be nil")
)

// Run is a run-length-encoded span of consecutive linear offsets along
// axis 0: the pixels [Start, Start+Length). A run never crosses an
// axis-0 row boundary, so it is contiguous in index space as well.
type Run struct {
	Start  int
	Length int
}

// Object is one connected component of a labeled raster: a unique
// label, the run-length encoding of its index positions, and one
// mutable attribute of kind A.
type Object[A any] struct {
	Label     int
	Runs      []Run
	Attribute A
}

// Size returns the number of pixels in the component.
// Complexity: O(runs).
func (o *Object[A]) Size() int {
	n := 0
	for _, r := range o.Runs {
		n += r.Length
	}
	return n
}

// ForEachOffset calls fn for every linear offset of the component, in
// increasing order. Complexity: O(pixels of the component).
func (o *Object[A]) ForEachOffset(fn func(off int)) {
	for _, r := range o.Runs {
		for i := 0; i < r.Length; i++ {
			fn(r.Start + i)
		}
	}
}

// clone returns an independent deep copy of the object.
func (o *Object[A]) clone() *Object[A] {
	out := &Object[A]{Label: o.Label, Attribute: o.Attribute}
	out.Runs = make([]Run, len(o.Runs))
	copy(out.Runs, o.Runs)
	return out
}

// Map is an ordered-by-label collection of Objects over the geometry
// of the raster it was built from. Positions covered by no object are
// implicit background.
type Map[A any] struct {
	geom    raster.Geometry
	objects []*Object[A]
}

// NewMap builds a Map over g from pre-built objects. The slice is
// adopted, not copied; callers hand over ownership.
func NewMap[A any](g raster.Geometry, objects []*Object[A]) *Map[A] {
	return &Map[A]{geom: g, objects: objects}
}

// Geometry returns the geometry of the source raster.
func (m *Map[A]) Geometry() raster.Geometry { return m.geom }

// Len returns the number of label objects.
func (m *Map[A]) Len() int { return len(m.objects) }

// Objects returns the internal object slice, ordered by label.
// Callers must treat it as read-only; use Clone before mutating.
func (m *Map[A]) Objects() []*Object[A] { return m.objects }

// Clone returns an independent deep copy of the map.
func (m *Map[A]) Clone() *Map[A] {
	out := &Map[A]{geom: m.geom, objects: make([]*Object[A], len(m.objects))}
	for i, o := range m.objects {
		out.objects[i] = o.clone()
	}
	return out
}
