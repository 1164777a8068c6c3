// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package numtree adds elementwise arithmetic and statistics to nested,
// path-keyed trees.
//
// A [NumTree] is an [ndtree.Tree] with an [Arithmetic] for its leaf values.
// It is built on the public Tree API alone and adds no stored state.
// All operators return a new tree, only [NumTree.ApplyInPlace] mutates.
//
//	a := numtree.FromProduct([][]string{{"a", "b"}, {"x", "y"}}, 1.0)
//	b := numtree.FromProduct([][]string{{"a", "b"}, {"x", "y"}}, 2.0)
//
//	sum, _ := a.Add(b)   // 3.0 at every leaf
//	half, _ := a.Div(2)  // 0.5 at every leaf
//
// With a tree as right operand, each leaf of the right operand is
// broadcast over all leaves of the left operand under the same path.
// Every leaf path of the right operand must be present in the left
// operand, as leaf or as branch.
package numtree

import (
	"fmt"
	"math"
	"math/big"
	"reflect"

	"github.com/gaissmai/ndtree"
	"github.com/shopspring/decimal"
)

// NumTree is a tree with elementwise arithmetic on its leaf values.
//
// The zero value is not usable, create a NumTree with New, NewDecimal,
// Wrap or one of the From... functions.
type NumTree[K comparable, V any] struct {
	*ndtree.Tree[K, V]
	arith Arithmetic[V]
}

// New returns an empty tree with builtin numeric leaves.
func New[K comparable, V Number]() *NumTree[K, V] {
	return Wrap[K, V](ndtree.New[K, V](), Numbers[V]{})
}

// NewDecimal returns an empty tree with decimal leaves.
func NewDecimal[K comparable]() *NumTree[K, decimal.Decimal] {
	return Wrap[K, decimal.Decimal](ndtree.New[K, decimal.Decimal](), Decimals{})
}

// Wrap returns a NumTree operating on t with the given arithmetic,
// t is not copied. A nil t is replaced by an empty tree.
func Wrap[K comparable, V any](t *ndtree.Tree[K, V], arith Arithmetic[V]) *NumTree[K, V] {
	if t == nil {
		t = ndtree.New[K, V]()
	}
	return &NumTree[K, V]{Tree: t, arith: arith}
}

// FromMap returns a new tree with builtin numeric leaves from native
// nested maps, see [ndtree.FromMap].
func FromMap[K comparable, V Number](m map[K]any) (*NumTree[K, V], error) {
	t, err := ndtree.FromMap[K, V](m)
	if err != nil {
		return nil, err
	}
	return Wrap[K, V](t, Numbers[V]{}), nil
}

// FromProduct returns a new tree with val at every path of the cartesian
// product of the iterables, see [ndtree.FromProduct].
func FromProduct[K comparable, V Number](iterables [][]K, val V) *NumTree[K, V] {
	return Wrap[K, V](ndtree.FromProduct(iterables, val), Numbers[V]{})
}

// Arithmetic returns the arithmetic of the leaf values.
func (t *NumTree[K, V]) Arithmetic() Arithmetic[V] {
	return t.arith
}

// Clone returns a deep copy with the same arithmetic.
func (t *NumTree[K, V]) Clone() *NumTree[K, V] {
	return Wrap(t.Tree.Clone(), t.arith)
}

// Equal reports whether t and o have the same leaf paths with equal values.
func (t *NumTree[K, V]) Equal(o *NumTree[K, V]) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.Tree.Equal(o.Tree)
}

// Extract is [ndtree.Tree.Extract] with the arithmetic attached.
func (t *NumTree[K, V]) Extract(pattern ...K) (*NumTree[K, V], error) {
	x, err := t.Tree.Extract(pattern...)
	if err != nil {
		return nil, err
	}
	return Wrap(x, t.arith), nil
}

// BinaryOp returns a new tree with op applied elementwise.
//
// The other operand is either a tree, *NumTree[K, V] or *ndtree.Tree[K, V],
// or a scalar. A scalar is a V or any numeric value that converts to a
// numeric or decimal V without loss, 2.0 is a scalar for int leaves but
// 2.5 is not. NaN and infinities are no scalars for decimal leaves.
// Everything else is reported with ErrUnsupportedOperand.
//
// With a scalar s every leaf v becomes v op s.
//
// With a tree, for each leaf (p, w) of other every leaf v of t under
// path p becomes v op w, leaves of t not covered by other keep their
// values. A path p of other that is neither leaf nor branch of t is
// reported with ErrIncompatibleKeys.
func (t *NumTree[K, V]) BinaryOp(op Op, other any) (*NumTree[K, V], error) {
	if !op.Valid() {
		return nil, fmt.Errorf("%w: operator %v", ErrUnsupportedOperand, op)
	}

	switch o := other.(type) {
	case *NumTree[K, V]:
		if o != nil {
			return t.combine(op, o.Tree)
		}
	case *ndtree.Tree[K, V]:
		if o != nil {
			return t.combine(op, o)
		}
	}

	if s, ok := scalarOf[V](other); ok {
		return t.scalar(op, s)
	}

	return nil, fmt.Errorf("%w: %T %v %T", ErrUnsupportedOperand, t, op, other)
}

// Add returns t + other, see BinaryOp.
func (t *NumTree[K, V]) Add(other any) (*NumTree[K, V], error) {
	return t.BinaryOp(OpAdd, other)
}

// Sub returns t - other, see BinaryOp.
func (t *NumTree[K, V]) Sub(other any) (*NumTree[K, V], error) {
	return t.BinaryOp(OpSub, other)
}

// Mul returns t * other, see BinaryOp.
func (t *NumTree[K, V]) Mul(other any) (*NumTree[K, V], error) {
	return t.BinaryOp(OpMul, other)
}

// Div returns t / other, see BinaryOp.
func (t *NumTree[K, V]) Div(other any) (*NumTree[K, V], error) {
	return t.BinaryOp(OpDiv, other)
}

// FloorDiv returns t // other, see BinaryOp.
func (t *NumTree[K, V]) FloorDiv(other any) (*NumTree[K, V], error) {
	return t.BinaryOp(OpFloorDiv, other)
}

// Mod returns t % other, see BinaryOp.
func (t *NumTree[K, V]) Mod(other any) (*NumTree[K, V], error) {
	return t.BinaryOp(OpMod, other)
}

// Pow returns t ** other, see BinaryOp.
func (t *NumTree[K, V]) Pow(other any) (*NumTree[K, V], error) {
	return t.BinaryOp(OpPow, other)
}

// Neg returns -t, the product with -1.
func (t *NumTree[K, V]) Neg() (*NumTree[K, V], error) {
	return t.scalar(OpMul, t.arith.FromInt(-1))
}

func (t *NumTree[K, V]) scalar(op Op, s V) (*NumTree[K, V], error) {
	out := t.Clone()
	for p, v := range t.All() {
		r, err := t.arith.Apply(op, v, s)
		if err != nil {
			return nil, fmt.Errorf("%v at %v: %w", op, p, err)
		}
		out.Set(r, p...)
	}
	return out, nil
}

func (t *NumTree[K, V]) combine(op Op, other *ndtree.Tree[K, V]) (*NumTree[K, V], error) {
	out := t.Clone()
	for p, w := range other.All() {
		if !t.HasPrefix(p...) {
			return nil, fmt.Errorf("%w: %v not in left operand", ErrIncompatibleKeys, p)
		}

		// broadcast w over all leaves below p
		for lp, v := range t.Subtree(p...) {
			r, err := t.arith.Apply(op, v, w)
			if err != nil {
				return nil, fmt.Errorf("%v at %v: %w", op, lp, err)
			}
			out.Set(r, lp...)
		}
	}
	return out, nil
}

// scalarOf returns x as V, converting between numeric kinds if needed.
// Untyped constants like 2 arrive here as int. A conversion that does
// not survive the way back, e.g. 2.5 to int or 300 to uint8, fails.
func scalarOf[V any](x any) (V, bool) {
	if v, ok := x.(V); ok {
		return v, true
	}

	var zero V
	rv := reflect.ValueOf(x)
	if !rv.IsValid() || !isNumericKind(rv.Kind()) {
		return zero, false
	}

	if _, ok := any(zero).(decimal.Decimal); ok {
		d, ok := decimalOf(rv)
		if !ok {
			return zero, false
		}
		v, ok := any(d).(V)
		return v, ok
	}

	vt := reflect.TypeFor[V]()
	if !isNumericKind(vt.Kind()) {
		return zero, false
	}

	cv := rv.Convert(vt)
	if !lossless(rv, cv) {
		return zero, false
	}

	v, ok := cv.Interface().(V)
	return v, ok
}

// lossless reports whether cv, converted from rv, converts back to rv.
// NaN survives between float kinds although it never compares equal.
func lossless(rv, cv reflect.Value) bool {
	if rv.CanFloat() && math.IsNaN(rv.Float()) {
		return cv.CanFloat()
	}
	return cv.Convert(rv.Type()).Equal(rv)
}

// decimalOf converts a numeric value, floats may be inexact.
// NaN and infinities have no decimal.
func decimalOf(rv reflect.Value) (decimal.Decimal, bool) {
	switch {
	case rv.CanInt():
		return decimal.NewFromInt(rv.Int()), true
	case rv.CanUint():
		return decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0), true
	default:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(f), true
	}
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
