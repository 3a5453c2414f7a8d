package labelmap

import (
	"github.com/theodesp/unionfind"

	"github.com/morpho-go/morpho/raster"
)

// Labelize extracts the maximal connected components of the foreground
// value in r under the given connectivity policy, returning a Map whose
// objects carry the zero value of A as their initial attribute.
//
// The algorithm is two-pass raster-scan labeling. The first pass walks
// offsets in scan order and looks only at the backward half of the
// neighborhood (positions already visited): a foreground pixel adopts a
// neighboring provisional label, recording any label collisions in a
// union-find structure. The second pass resolves each provisional label
// to its root, compacts roots to sequential labels in first-encounter
// order, and assembles the run-length encoding row by row.
//
// A raster with no foreground pixels yields an empty Map and nil error.
//
// Complexity: O(pixels · neighbors · α) time, O(pixels) memory.
func Labelize[T comparable, A any](r *raster.Raster[T], foreground T, conn raster.Connectivity) (*Map[A], error) {
	if r == nil {
		return nil, ErrNilRaster
	}
	g := r.Geometry()
	rank := g.Rank()
	n := g.Pixels()

	// Pass 1: provisional labels, 0 meaning background.
	prov := make([]int, n)
	uf := unionfind.New(n + 1)
	backward := conn.Backward(rank)
	nb := make([]int, rank)
	next := 1
	for off := 0; off < n; off++ {
		if r.AtOffset(off) != foreground {
			continue
		}
		c := g.Coordinate(off)
		adopted := 0
		for _, d := range backward {
			for i := range d {
				nb[i] = c[i] + d[i]
			}
			if !g.InBounds(nb) {
				continue
			}
			l := prov[g.Offset(nb)]
			if l == 0 {
				continue
			}
			if adopted == 0 {
				adopted = l
			} else if l != adopted {
				// Two provisional labels meet at this pixel; the
				// second pass reconciles them through their root.
				uf.Union(adopted, l)
			}
		}
		if adopted == 0 {
			adopted = next
			next++
		}
		prov[off] = adopted
	}

	// Pass 2: resolve roots, compact labels in first-encounter order,
	// and build runs one axis-0 row at a time.
	labelOf := make(map[int]int, next-1)
	var objects []*Object[A]
	size0 := g.Size()[0]
	for rowStart := 0; rowStart < n; rowStart += size0 {
		runLabel, runStart := 0, 0
		for x := 0; x <= size0; x++ {
			label := 0
			if x < size0 {
				if p := prov[rowStart+x]; p != 0 {
					root := uf.Root(p)
					compact, ok := labelOf[root]
					if !ok {
						compact = len(objects) + 1
						labelOf[root] = compact
						objects = append(objects, &Object[A]{Label: compact})
					}
					label = compact
				}
			}
			if label == runLabel {
				continue
			}
			if runLabel != 0 {
				obj := objects[runLabel-1]
				obj.Runs = append(obj.Runs, Run{Start: rowStart + runStart, Length: x - runStart})
			}
			runLabel, runStart = label, x
		}
	}

	return NewMap(g, objects), nil
}
