// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package numtree

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Decimals is the Arithmetic of arbitrary precision decimal leaves.
//
// Division rounds to [decimal.DivisionPrecision] digits, floor division
// and modulo follow the same rules as Numbers. Pow with a fractional
// exponent rounds to the same precision and fails for a negative base.
// Sqrt goes through float64.
type Decimals struct{}

var decimalOne = decimal.NewFromInt(1)

// Apply implements Arithmetic.
func (Decimals) Apply(op Op, a, b decimal.Decimal) (decimal.Decimal, error) {
	switch op {
	case OpAdd:
		return a.Add(b), nil
	case OpSub:
		return a.Sub(b), nil
	case OpMul:
		return a.Mul(b), nil
	case OpDiv:
		if b.IsZero() {
			return decimal.Zero, ErrDivisionByZero
		}
		return a.Div(b), nil
	case OpFloorDiv:
		if b.IsZero() {
			return decimal.Zero, ErrDivisionByZero
		}
		q, r := a.QuoRem(b, 0)
		if !r.IsZero() && r.Sign() != b.Sign() {
			q = q.Sub(decimalOne)
		}
		return q, nil
	case OpMod:
		if b.IsZero() {
			return decimal.Zero, ErrDivisionByZero
		}
		_, r := a.QuoRem(b, 0)
		if !r.IsZero() && r.Sign() != b.Sign() {
			r = r.Add(b)
		}
		return r, nil
	case OpPow:
		if a.IsZero() {
			switch b.Sign() {
			case 0:
				return decimalOne, nil
			case -1:
				return decimal.Zero, ErrDivisionByZero
			}
		}
		r, err := a.PowWithPrecision(b, int32(decimal.DivisionPrecision))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %v ** %v: %w", ErrUnsupportedOperand, a, b, err)
		}
		return r, nil
	}

	return decimal.Zero, fmt.Errorf("%w: operator %v", ErrUnsupportedOperand, op)
}

// FromInt implements Arithmetic.
func (Decimals) FromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// Sqrt implements Arithmetic.
func (Decimals) Sqrt(a decimal.Decimal) decimal.Decimal {
	return decimal.NewFromFloat(math.Sqrt(a.InexactFloat64()))
}
