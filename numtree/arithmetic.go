// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package numtree

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Arithmetic implements the elementwise operators for leaf values of type V.
//
// Apply is the single dispatch point for all operators, everything else
// in this package is built on it.
type Arithmetic[V any] interface {
	// Apply returns a op b.
	Apply(op Op, a, b V) (V, error)

	// FromInt converts n, used for constants like -1 and for counts.
	FromInt(n int) V

	// Sqrt returns the square root of a.
	Sqrt(a V) V
}

// Number is the set of the builtin integer and float types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Numbers is the Arithmetic of the builtin numeric types.
//
// Floor division and modulo round toward negative infinity, the result
// of modulo has the sign of the divisor. A zero divisor is reported with
// ErrDivisionByZero for integers and floats alike. Integer powers with a
// non-negative exponent are exact, all other powers use [math.Pow].
// A zero base with a negative exponent is a division by zero.
type Numbers[V Number] struct{}

// Apply implements Arithmetic.
func (Numbers[V]) Apply(op Op, a, b V) (V, error) {
	var zero V

	switch op {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return zero, ErrDivisionByZero
		}
		return a / b, nil
	case OpFloorDiv:
		if b == 0 {
			return zero, ErrDivisionByZero
		}
		return floorDiv(a, b), nil
	case OpMod:
		if b == 0 {
			return zero, ErrDivisionByZero
		}
		return floorMod(a, b), nil
	case OpPow:
		if a == 0 && b < 0 {
			return zero, ErrDivisionByZero
		}
		return pow(a, b), nil
	}

	return zero, fmt.Errorf("%w: operator %v", ErrUnsupportedOperand, op)
}

// FromInt implements Arithmetic.
func (Numbers[V]) FromInt(n int) V {
	return V(n)
}

// Sqrt implements Arithmetic, integers are truncated.
func (Numbers[V]) Sqrt(a V) V {
	return V(math.Sqrt(float64(a)))
}

// isInteger reports whether V is an integer type.
func isInteger[V Number]() bool {
	one := V(1)
	return one/2 == 0
}

// floorDiv, b must not be zero.
func floorDiv[V Number](a, b V) V {
	if !isInteger[V]() {
		return V(math.Floor(float64(a) / float64(b)))
	}

	// Go truncates toward zero, adjust toward -inf
	q := a / b
	if r := a - q*b; r != 0 && (r < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod, b must not be zero.
func floorMod[V Number](a, b V) V {
	if !isInteger[V]() {
		r := math.Mod(float64(a), float64(b))
		if r != 0 && (r < 0) != (b < 0) {
			r += float64(b)
		}
		return V(r)
	}

	return a - floorDiv(a, b)*b
}

// pow returns a**b, 0**0 is 1. Negative exponents of integers truncate
// toward zero, the caller rejects a zero base.
func pow[V Number](a, b V) V {
	if !isInteger[V]() || b < 0 {
		return V(math.Pow(float64(a), float64(b)))
	}

	// exponentiation by squaring
	result, base := V(1), a
	for e := uint64(b); e > 0; e >>= 1 {
		if e&1 == 1 {
			result *= base
		}
		base *= base
	}
	return result
}
