// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ndtree

import (
	"github.com/gaissmai/ndtree/internal/value"
)

// Equaler is a generic interface for types that can decide their own
// equality logic. It can be used to override the potentially expensive
// default comparison with [reflect.DeepEqual].
type Equaler[V any] interface {
	Equal(other V) bool
}

// Equal reports whether t and o have the same leaf paths with equal values.
// The order of the siblings is irrelevant, as are empty branches.
//
// If V implements Equaler[V], that custom equality method is used,
// otherwise the values are compared with [reflect.DeepEqual].
func (t *Tree[K, V]) Equal(o *Tree[K, V]) bool {
	if t == o {
		return true
	}

	// both paths are unique, same count and every path of t in o is enough
	if t.Len() != o.Len() {
		return false
	}

	equal := value.EqualFnFactory[V]()
	for p, v := range t.All() {
		ov, ok := o.Lookup(p...)
		if !ok {
			return false
		}
		if !equal(v, ov) {
			return false
		}
	}

	return true
}
