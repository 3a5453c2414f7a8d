package raster

// Complement returns a fresh raster in which every pixel equal to
// foreground becomes background and vice versa; pixels equal to
// neither pass through unchanged. The input is never mutated.
//
// Complement is its own inverse: applying it twice with the same value
// pair restores the original raster.
//
// Complexity: O(pixels), Memory: O(pixels).
func Complement[T comparable](r *Raster[T], foreground, background T) (*Raster[T], error) {
	if r == nil {
		return nil, ErrNilRaster
	}
	out := r.Clone()
	for i, p := range out.pix {
		switch p {
		case foreground:
			out.pix[i] = background
		case background:
			out.pix[i] = foreground
		}
	}
	return out, nil
}
