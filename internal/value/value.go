// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package value decides at runtime how leaf values of a type parameter V
// are compared and copied.
//
// A V may bring its own Equal and Clone methods. The factories below
// resolve this once per operation, so the per-leaf work is a plain
// function call without a type assertion.
package value

import (
	"reflect"
)

// Equaler is implemented by values with their own equality.
type Equaler[V any] interface {
	Equal(other V) bool
}

// Cloner is implemented by values that need a deep copy, e.g. pointers
// or structs holding slices and maps.
type Cloner[V any] interface {
	Clone() V
}

// EqualFunc reports whether two values are equal.
type EqualFunc[V any] func(a, b V) bool

// EqualFnFactory returns the Equal method if V implements Equaler[V],
// [reflect.DeepEqual] otherwise.
func EqualFnFactory[V any]() EqualFunc[V] {
	var zero V
	// no type assertions on type parameters, go through any
	if _, ok := any(zero).(Equaler[V]); ok {
		return func(a, b V) bool {
			return any(a).(Equaler[V]).Equal(b)
		}
	}
	return func(a, b V) bool {
		return reflect.DeepEqual(a, b)
	}
}

// CloneFunc returns a copy of a value.
type CloneFunc[V any] func(V) V

// CloneFnFactory returns CloneVal if V implements Cloner[V] and nil
// otherwise, a nil CloneFunc means plain assignment is a sufficient copy.
func CloneFnFactory[V any]() CloneFunc[V] {
	var zero V
	if _, ok := any(zero).(Cloner[V]); ok {
		return CloneVal[V]
	}
	return nil
}

// Copy applies fn to v, a nil fn returns v unchanged.
func (fn CloneFunc[V]) Copy(v V) V {
	if fn == nil {
		return v
	}
	return fn(v)
}

// CloneVal returns val.Clone() for a Cloner and val otherwise.
// Clone is also called on nil pointers and must handle them.
func CloneVal[V any](val V) V {
	c, ok := any(val).(Cloner[V])
	if !ok || c == nil {
		return val
	}
	return c.Clone()
}
