// SPDX-License-Identifier: MIT

package dist

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrKeyKind indicates a transform met a key of the wrong shape
	// (a tuple where a scalar is required, or a tuple of the wrong arity).
	ErrKeyKind = errors.New("dist: unsupported key kind")

	// ErrStep indicates a non-positive or non-finite grid step.
	ErrStep = errors.New("dist: invalid step")

	// ErrDivisor indicates normalization by a non-positive count.
	ErrDivisor = errors.New("dist: divisor must be positive")
)

// gridEps absorbs float drift when comparing keys against grid points.
const gridEps = 1e-9

// gridDigits is the precision grid points are rounded to.
const gridDigits = 9

// RoundTo rounds x to the given number of decimal places, half away from zero.
func RoundTo(x float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(x*p) / p
}

// Scale returns a new distribution with every value multiplied by f.
func Scale(d *Distribution, f float64) *Distribution {
	out := New()
	d.Each(func(k Key, v float64) { out.Set(k, v*f) })
	return out
}

// Normalize divides every value by trials.
func Normalize(d *Distribution, trials float64) (*Distribution, error) {
	if !(trials > 0) || math.IsInf(trials, 0) {
		return nil, fmt.Errorf("Normalize: trials=%g: %w", trials, ErrDivisor)
	}
	out := New()
	d.Each(func(k Key, v float64) { out.Set(k, v/trials) })
	return out, nil
}

// Cumulative turns a scalar-keyed probability table into its survival form.
//
// The grid runs min, min+step, ... up to and including the first point at or
// past max+step. The value at grid point x is the sum of d[k] over all k ≥ x,
// so it is non-increasing in x, equals the total at min and is 0 at the last
// point. An empty input yields an empty output.
func Cumulative(d *Distribution, step float64) (*Distribution, error) {
	if err := checkStep("Cumulative", step); err != nil {
		return nil, err
	}
	if err := requireScalar("Cumulative", d); err != nil {
		return nil, err
	}
	out := New()
	lo, ok := d.Min()
	if !ok {
		return out, nil
	}
	hi, _ := d.Max()

	keys, values := d.Keys(), d.Values()
	// suffix[i] = Σ values[i:]
	suffix := make([]float64, len(values)+1)
	for i := len(values) - 1; i >= 0; i-- {
		suffix[i] = suffix[i+1] + values[i]
	}

	j := 0
	limit := hi.Value() + step
	for i := 0; ; i++ {
		x := RoundTo(lo.Value()+float64(i)*step, gridDigits)
		for j < len(keys) && keys[j].Value() < x-gridEps {
			j++
		}
		out.Set(Scalar(x), suffix[j])
		if x >= limit-gridEps {
			break
		}
	}

	return out, nil
}

// Fill returns a copy of d with a zero entry for every grid point
// start, start+step, ..., stop (inclusive) that d lacks.
func Fill(d *Distribution, start, stop, step float64) (*Distribution, error) {
	if err := checkStep("Fill", step); err != nil {
		return nil, err
	}
	if err := requireScalar("Fill", d); err != nil {
		return nil, err
	}
	out := d.Clone()
	for i := 0; ; i++ {
		x := RoundTo(start+float64(i)*step, gridDigits)
		if x > stop+gridEps {
			break
		}
		if !out.Has(Scalar(x)) {
			out.Set(Scalar(x), 0)
		}
	}

	return out, nil
}

// Flatten re-keys d through fn, summing values that land on the same key.
func Flatten(d *Distribution, fn func(Key) Key) *Distribution {
	out := New()
	d.Each(func(k Key, v float64) { out.Add(fn(k), v) })
	return out
}

// FlattenHalfIntegral maps (halves, ones) keys to Scalar(0.5·halves + ones),
// the weight of a half-integral cover.
func FlattenHalfIntegral(d *Distribution) (*Distribution, error) {
	var bad error
	d.Each(func(k Key, _ float64) {
		if bad == nil && (k.IsScalar() || k.Len() != 2) {
			bad = fmt.Errorf("FlattenHalfIntegral: key %s: %w", k, ErrKeyKind)
		}
	})
	if bad != nil {
		return nil, bad
	}

	return Flatten(d, func(k Key) Key {
		return Scalar(k.At(0)/2 + k.At(1))
	}), nil
}

// Bucket rounds x to one decimal place, collapsing solver noise into stable
// probability-table keys.
func Bucket(x float64) Key { return Scalar(RoundTo(x, 1)) }

func checkStep(method string, step float64) error {
	if !(step > 0) || math.IsInf(step, 0) {
		return fmt.Errorf("%s: step=%g: %w", method, step, ErrStep)
	}
	return nil
}

func requireScalar(method string, d *Distribution) error {
	for _, k := range d.Keys() {
		if !k.IsScalar() {
			return fmt.Errorf("%s: key %s: %w", method, k, ErrKeyKind)
		}
	}
	return nil
}
