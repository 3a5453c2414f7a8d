package reconstruct

import (
	"github.com/morpho-go/morpho/labelmap"
	"github.com/morpho-go/morpho/raster"
)

// Engine computes binary reconstructions for one Options setting. It
// owns no state across invocations; a single Engine may be used from
// multiple goroutines on independent input pairs.
type Engine[T comparable] struct {
	opts Options[T]
}

// NewEngine returns an engine for the given options.
func NewEngine[T comparable](opts Options[T]) *Engine[T] {
	return &Engine[T]{opts: opts}
}

// Options returns the engine's configuration.
func (e *Engine[T]) Options() Options[T] { return e.opts }

// RequiresFullExtent reports the engine's data-dependency contract to
// hosting schedulers: labeling and reconstruction are global
// operations, so the engine always needs the entire extent of both
// inputs and always produces the entire extent of its output. No
// partial or streamed execution is possible.
func (e *Engine[T]) RequiresFullExtent() bool { return true }

// validate applies the fail-fast checks of the error taxonomy, in
// order: unset inputs, value configuration, geometry agreement.
func (e *Engine[T]) validate(in Inputs[T]) error {
	if in.Marker == nil {
		return ErrNilMarker
	}
	if in.Mask == nil {
		return ErrNilMask
	}
	if e.opts.Foreground == e.opts.Background {
		return ErrBadValues
	}
	if !in.Marker.Geometry().Equal(in.Mask.Geometry()) {
		return ErrGeometryMismatch
	}
	return nil
}

// Compute runs the reconstruction pipeline and returns a fresh raster
// whose foreground is the union of the mask components seeded by the
// marker. Neither input is mutated.
//
// The erosion-style operator is realized through the standard duality
// transform over dilation-style region primitives: both inputs are
// complemented, which moves the phase of interest onto the background
// value; the complemented mask is labeled on that phase, components
// are marked seeded against the complemented marker, unseeded
// components are opened away, survivors are rasterized, and a final
// complement undoes the transform. No iteration: every stage is a
// single pass.
//
// Complexity: O(pixels · neighbors) time, O(pixels) memory.
func (e *Engine[T]) Compute(in Inputs[T]) (*raster.Raster[T], error) {
	if err := e.validate(in); err != nil {
		return nil, err
	}
	fg, bg := e.opts.Foreground, e.opts.Background

	// Duality transform: after complementing, the mask components to
	// reconstruct carry the background value.
	cMarker, err := raster.Complement(in.Marker, fg, bg)
	if err != nil {
		return nil, err
	}
	cMask, err := raster.Complement(in.Mask, fg, bg)
	if err != nil {
		return nil, err
	}

	lm, err := labelmap.Labelize[T, bool](cMask, bg, e.opts.Connectivity)
	if err != nil {
		return nil, err
	}

	seeded, err := MarkSeeded(lm, cMarker, bg)
	if err != nil {
		return nil, err
	}

	kept := seeded.Filter(func(keep bool) bool { return keep })

	mid, err := labelmap.Rasterize(kept, bg, fg)
	if err != nil {
		return nil, err
	}
	return raster.Complement(mid, fg, bg)
}

// ByErosion is the one-shot form of reconstruction by erosion:
// equivalent to NewEngine(opts).Compute(in).
func ByErosion[T comparable](in Inputs[T], opts Options[T]) (*raster.Raster[T], error) {
	return NewEngine(opts).Compute(in)
}

// MarkSeeded returns a copy of m in which every object's attribute is
// true iff at least one of its index positions holds the given value
// in the reference raster. The input map is never mutated. Exported so
// custom label-map pipelines can reuse the seed-attribute stage with
// other opening predicates.
//
// Returns ErrGeometryMismatch when the reference raster does not share
// the map's geometry.
//
// Complexity: O(total runs + seeded-prefix pixels).
func MarkSeeded[T comparable, A any](m *labelmap.Map[A], ref *raster.Raster[T], value T) (*labelmap.Map[bool], error) {
	if m == nil {
		return nil, labelmap.ErrNilMap
	}
	if ref == nil {
		return nil, ErrNilMarker
	}
	if !m.Geometry().Equal(ref.Geometry()) {
		return nil, ErrGeometryMismatch
	}
	objects := make([]*labelmap.Object[bool], 0, m.Len())
	for _, o := range m.Objects() {
		seeded := false
		for _, run := range o.Runs {
			for i := 0; i < run.Length; i++ {
				if ref.AtOffset(run.Start+i) == value {
					seeded = true
					break
				}
			}
			if seeded {
				break
			}
		}
		runs := make([]labelmap.Run, len(o.Runs))
		copy(runs, o.Runs)
		objects = append(objects, &labelmap.Object[bool]{
			Label:     o.Label,
			Runs:      runs,
			Attribute: seeded,
		})
	}
	return labelmap.NewMap(m.Geometry(), objects), nil
}
