// SPDX-License-Identifier: MIT

package enumerate

// Domain is the ordered set of values a single node may take.
type Domain []float64

var (
	// BinaryDomain labels cover membership or a bipartition side.
	BinaryDomain = Domain{0, 1}
	// HalfIntegralDomain is the support of extreme points of the cover LP.
	HalfIntegralDomain = Domain{0, 0.5, 1}
	// TernaryDomain labels the three sides of a 3-way partition.
	TernaryDomain = Domain{0, 1, 2}
)

// ForEachAssignment calls fn for every assignment in D^n, in odometer order.
// The slice is reused; fn must copy it to retain it. An empty domain yields
// nothing; n ≤ 0 yields one empty assignment.
func ForEachAssignment(n int, d Domain, fn func(a []float64)) {
	if len(d) == 0 {
		return
	}
	if n < 0 {
		n = 0
	}
	idx := make([]int, n)
	a := make([]float64, n)
	for i := range a {
		a[i] = d[0]
	}
	for {
		fn(a)

		// advance the odometer
		i := n - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(d) {
				a[i] = d[idx[i]]
				break
			}
			idx[i] = 0
			a[i] = d[0]
		}
		if i < 0 {
			return
		}
	}
}

// Count returns |d|^n, the number of assignments ForEachAssignment visits.
func Count(n int, d Domain) int {
	if len(d) == 0 {
		return 0
	}
	c := 1
	for i := 0; i < n; i++ {
		c *= len(d)
	}
	return c
}
