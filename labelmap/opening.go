package labelmap

// Filter implements attribute opening: it returns a fresh Map holding
// deep copies of exactly the objects whose attribute satisfies keep,
// with labels unchanged. Objects failing the predicate are merged into
// the implicit background. The input map is never mutated.
//
// This generalizes size/shape morphological opening to an arbitrary
// attribute kind: pass a size threshold for a classical area opening,
// or the identity on bool to keep seeded components only.
//
// Complexity: O(objects + kept runs), Memory: O(kept runs).
func (m *Map[A]) Filter(keep func(A) bool) *Map[A] {
	out := &Map[A]{geom: m.geom}
	for _, o := range m.objects {
		if keep(o.Attribute) {
			out.objects = append(out.objects, o.clone())
		}
	}
	return out
}
