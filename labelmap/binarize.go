package labelmap

import (
	"github.com/morpho-go/morpho/raster"
)

// Rasterize converts a Map back into a raster over its source
// geometry: every object's pixels are set to foreground, every
// remaining position to background. Pure and total: an empty map
// yields an all-background raster.
//
// Complexity: O(pixels), Memory: O(pixels).
func Rasterize[T comparable, A any](m *Map[A], foreground, background T) (*raster.Raster[T], error) {
	if m == nil {
		return nil, ErrNilMap
	}
	out, err := raster.NewFilled(m.geom, background)
	if err != nil {
		return nil, err
	}
	for _, o := range m.objects {
		o.ForEachOffset(func(off int) {
			out.SetOffset(off, foreground)
		})
	}
	return out, nil
}
