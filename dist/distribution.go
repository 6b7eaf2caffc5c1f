// SPDX-License-Identifier: MIT

package dist

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Distribution maps Keys to float64 values in Key order.
// The zero value is not usable; call New.
type Distribution struct {
	tree *redblacktree.Tree
}

func keyComparator(a, b interface{}) int {
	return Compare(a.(Key), b.(Key))
}

// New returns an empty distribution.
func New() *Distribution {
	return &Distribution{tree: redblacktree.NewWith(keyComparator)}
}

// FromMap builds a distribution from scalar keys.
func FromMap(m map[float64]float64) *Distribution {
	d := New()
	for k, v := range m {
		d.Set(Scalar(k), v)
	}
	return d
}

// Len is the number of keys.
func (d *Distribution) Len() int { return d.tree.Size() }

// Set stores v under k, replacing any previous value.
func (d *Distribution) Set(k Key, v float64) { d.tree.Put(k, v) }

// Add adds v to the value under k; a missing key counts as 0.
func (d *Distribution) Add(k Key, v float64) { d.tree.Put(k, d.Get(k)+v) }

// Inc adds 1 under k.
func (d *Distribution) Inc(k Key) { d.Add(k, 1) }

// Get returns the value under k, or 0 when k is absent.
func (d *Distribution) Get(k Key) float64 {
	v, ok := d.tree.Get(k)
	if !ok {
		return 0
	}
	return v.(float64)
}

// Has reports whether k is present (possibly with value 0).
func (d *Distribution) Has(k Key) bool {
	_, ok := d.tree.Get(k)
	return ok
}

// Keys returns the keys in ascending order.
func (d *Distribution) Keys() []Key {
	out := make([]Key, 0, d.tree.Size())
	it := d.tree.Iterator()
	for it.Next() {
		out = append(out, it.Key().(Key))
	}
	return out
}

// Values returns the values in key order.
func (d *Distribution) Values() []float64 {
	out := make([]float64, 0, d.tree.Size())
	it := d.tree.Iterator()
	for it.Next() {
		out = append(out, it.Value().(float64))
	}
	return out
}

// Each calls fn for every entry in ascending key order.
func (d *Distribution) Each(fn func(k Key, v float64)) {
	it := d.tree.Iterator()
	for it.Next() {
		fn(it.Key().(Key), it.Value().(float64))
	}
}

// Min returns the smallest key; ok is false for an empty distribution.
func (d *Distribution) Min() (k Key, ok bool) {
	n := d.tree.Left()
	if n == nil {
		return Key{}, false
	}
	return n.Key.(Key), true
}

// Max returns the largest key; ok is false for an empty distribution.
func (d *Distribution) Max() (k Key, ok bool) {
	n := d.tree.Right()
	if n == nil {
		return Key{}, false
	}
	return n.Key.(Key), true
}

// Total is the sum of all values.
func (d *Distribution) Total() float64 { return floats.Sum(d.Values()) }

// Clone returns an independent copy.
func (d *Distribution) Clone() *Distribution {
	out := New()
	d.Each(out.Set)
	return out
}

// Merge adds every entry of o into d pointwise and returns d.
func (d *Distribution) Merge(o *Distribution) *Distribution {
	o.Each(d.Add)
	return d
}

// Equal reports whether d and o have the same keys and values within tol.
func (d *Distribution) Equal(o *Distribution, tol float64) bool {
	if d.Len() != o.Len() {
		return false
	}
	a, b := d.tree.Iterator(), o.tree.Iterator()
	for a.Next() && b.Next() {
		if Compare(a.Key().(Key), b.Key().(Key)) != 0 {
			return false
		}
		if !scalar.EqualWithinAbs(a.Value().(float64), b.Value().(float64), tol) {
			return false
		}
	}
	return true
}

// Merge returns the pointwise sum of ds as a new distribution.
func Merge(ds ...*Distribution) *Distribution {
	out := New()
	for _, d := range ds {
		out.Merge(d)
	}
	return out
}
