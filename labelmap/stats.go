package labelmap

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// SizeStats summarizes the pixel counts of a map's components.
// Useful when choosing thresholds for size-based attribute openings.
type SizeStats struct {
	Count  int
	Mean   float64
	Median float64
	StdDev float64
	Min    int
	Max    int
}

// ComputeSizeStats returns component-size statistics for m.
// An empty map yields the zero SizeStats.
//
// Complexity: O(objects · runs + objects·log(objects)).
func ComputeSizeStats[A any](m *Map[A]) SizeStats {
	if m == nil || len(m.objects) == 0 {
		return SizeStats{}
	}
	sizes := make([]float64, len(m.objects))
	s := SizeStats{Count: len(m.objects), Min: m.objects[0].Size(), Max: 0}
	for i, o := range m.objects {
		sz := o.Size()
		sizes[i] = float64(sz)
		if sz < s.Min {
			s.Min = sz
		}
		if sz > s.Max {
			s.Max = sz
		}
	}
	s.Mean = stat.Mean(sizes, nil)
	s.StdDev = stat.StdDev(sizes, nil)
	sort.Float64s(sizes)
	s.Median = stat.Quantile(0.5, stat.Empirical, sizes, nil)
	return s
}
