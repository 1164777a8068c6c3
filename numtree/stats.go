// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package numtree

import (
	"fmt"

	"github.com/gaissmai/ndtree"
)

// Apply returns a new tree with fn applied to every leaf value,
// t is left untouched.
func (t *NumTree[K, V]) Apply(fn func(V) V) *NumTree[K, V] {
	out := t.Clone()
	out.ApplyInPlace(fn)
	return out
}

// ApplyInPlace applies fn to every leaf value of t.
func (t *NumTree[K, V]) ApplyInPlace(fn func(V) V) {
	// overwriting yielded leaves keeps the shape, allowed during All
	for p, v := range t.All() {
		t.Set(fn(v), p...)
	}
}

// Reduce folds the leaf values from the left in traversal order,
// seeded with the first value. It returns ErrEmptyTree if there are
// no leaves. Use Fold for an explicit initial accumulator.
func (t *NumTree[K, V]) Reduce(fn func(acc, v V) V) (V, error) {
	var acc V
	seeded := false

	for v := range t.Values() {
		if !seeded {
			acc, seeded = v, true
			continue
		}
		acc = fn(acc, v)
	}

	if !seeded {
		return acc, ErrEmptyTree
	}
	return acc, nil
}

// Fold folds the leaf values of t from the left in traversal order,
// starting with init.
func Fold[K comparable, V, A any](t *ndtree.Tree[K, V], init A, fn func(acc A, v V) A) A {
	acc := init
	for v := range t.Values() {
		acc = fn(acc, v)
	}
	return acc
}

// Total returns the sum of all leaf values, zero for an empty tree.
func (t *NumTree[K, V]) Total() (V, error) {
	sum := t.arith.FromInt(0)
	for p, v := range t.All() {
		var err error
		if sum, err = t.arith.Apply(OpAdd, sum, v); err != nil {
			return sum, fmt.Errorf("total at %v: %w", p, err)
		}
	}
	return sum, nil
}

// Mean returns Total / Len. An empty tree is a division by zero.
// Integer leaves give a truncated mean, the mean of 1 and 2 is 1.
func (t *NumTree[K, V]) Mean() (V, error) {
	sum, err := t.Total()
	if err != nil {
		return sum, err
	}

	mean, err := t.arith.Apply(OpDiv, sum, t.arith.FromInt(t.Len()))
	if err != nil {
		return mean, fmt.Errorf("mean: %w", err)
	}
	return mean, nil
}

// Std returns the sample standard deviation of the leaf values,
//
//	sqrt( sum((v - mean)**2) / (n - 1) )
//
// Trees with less than two leaves are a division by zero.
func (t *NumTree[K, V]) Std() (V, error) {
	mean, err := t.Mean()
	if err != nil {
		return mean, err
	}

	a := t.arith
	sum := a.FromInt(0)
	n := 0

	for v := range t.Values() {
		d, err := a.Apply(OpSub, v, mean)
		if err != nil {
			return d, fmt.Errorf("std: %w", err)
		}
		if d, err = a.Apply(OpMul, d, d); err != nil {
			return d, fmt.Errorf("std: %w", err)
		}
		if sum, err = a.Apply(OpAdd, sum, d); err != nil {
			return sum, fmt.Errorf("std: %w", err)
		}
		n++
	}

	variance, err := a.Apply(OpDiv, sum, a.FromInt(n-1))
	if err != nil {
		return variance, fmt.Errorf("std: %w", err)
	}
	return a.Sqrt(variance), nil
}
