// SPDX-License-Identifier: MIT

package dist

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxTupleLen is the longest tuple a Key can hold.
const MaxTupleLen = 4

// Key is a comparable distribution key: a scalar or a tuple of 1..MaxTupleLen
// float64 components. The zero Key is the scalar 0.
type Key struct {
	n uint8 // 0 for scalars, tuple length otherwise
	c [MaxTupleLen]float64
}

// Scalar returns the scalar key v.
func Scalar(v float64) Key {
	return Key{c: [MaxTupleLen]float64{v}}
}

// Tuple returns a tuple key. Panics when len(vs) is 0 or over MaxTupleLen.
func Tuple(vs ...float64) Key {
	if len(vs) == 0 || len(vs) > MaxTupleLen {
		panic(fmt.Sprintf("dist: Tuple arity %d not in [1,%d]", len(vs), MaxTupleLen))
	}
	k := Key{n: uint8(len(vs))}
	copy(k.c[:], vs)

	return k
}

// IsScalar reports whether k is a scalar key.
func (k Key) IsScalar() bool { return k.n == 0 }

// Len is 1 for scalars and the arity for tuples.
func (k Key) Len() int {
	if k.n == 0 {
		return 1
	}
	return int(k.n)
}

// Value returns the scalar value (the first component of a tuple).
func (k Key) Value() float64 { return k.c[0] }

// At returns component i.
func (k Key) At(i int) float64 { return k.c[i] }

// Components returns a copy of the components.
func (k Key) Components() []float64 {
	return append([]float64(nil), k.c[:k.Len()]...)
}

// Compare orders a before b: -1, 0 or +1.
func Compare(a, b Key) int {
	switch {
	case a.n < b.n:
		return -1
	case a.n > b.n:
		return 1
	}
	for i := 0; i < a.Len(); i++ {
		switch {
		case a.c[i] < b.c[i]:
			return -1
		case a.c[i] > b.c[i]:
			return 1
		}
	}

	return 0
}

// String renders scalars as plain numbers and tuples as "(a, b)".
func (k Key) String() string {
	if k.IsScalar() {
		return formatFloat(k.c[0])
	}
	parts := make([]string, k.n)
	for i := range parts {
		parts[i] = formatFloat(k.c[i])
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
