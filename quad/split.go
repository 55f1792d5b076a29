package quad

import "sort"

// SplitAtLevel partitions a Morton-sorted run of quadrants that all lie
// strictly below a common ancestor at the given level into the 2^D
// child buckets at level+1. It writes 2^D+1 cumulative offsets into
// out: out[k]..out[k+1] is the sub-run whose level-(level+1) ancestor
// has z-order child index k. Cells deeper than level+1 bucket by that
// ancestor's index, so mixed refinement depths are handled.
func (d Dim) SplitAtLevel(quads []Quadrant, level int8, out []int32) {
	c := d.Children()
	n := len(quads)
	out[0] = 0
	for k := 1; k < c; k++ {
		lo := int(out[k-1])
		out[k] = int32(lo + sort.Search(n-lo, func(i int) bool {
			return d.ChildID(quads[lo+i], level+1) >= k
		}))
	}
	out[c] = int32(n)
}

// FindHigherBound returns the largest index i such that quads[i] does
// not exceed key in Morton order, or -1 when every element exceeds it.
func (d Dim) FindHigherBound(quads []Quadrant, key Quadrant) int {
	return sort.Search(len(quads), func(i int) bool {
		return d.Compare(quads[i], key) > 0
	}) - 1
}
