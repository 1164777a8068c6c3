// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ndtree

import (
	"iter"
)

// All returns an iterator over all leaves as (path, value) pairs.
//
// The iteration is depth-first in pre-order, siblings in insertion order.
// Each call starts a fresh traversal, the yielded paths are new slices
// owned by the caller.
//
// Overwriting the value of an already yielded leaf with Set during the
// iteration is allowed, any other modification of the tree is undefined.
func (t *Tree[K, V]) All() iter.Seq2[Path[K], V] {
	return func(yield func(Path[K], V) bool) {
		if t == nil {
			return
		}
		t.root.walk(nil, yield)
	}
}

// Keys returns an iterator over the paths of all leaves, see All.
func (t *Tree[K, V]) Keys() iter.Seq[Path[K]] {
	return func(yield func(Path[K]) bool) {
		for p := range t.All() {
			if !yield(p) {
				return
			}
		}
	}
}

// Values returns an iterator over the values of all leaves, see All.
func (t *Tree[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range t.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Rows returns an iterator over all leaves flattened to rows,
// the tokens of the path followed by the value.
//
//	{"a": 0, "b": {"ba": 1}}  ->  [a 0], [b ba 1]
func (t *Tree[K, V]) Rows() iter.Seq[[]any] {
	return func(yield func([]any) bool) {
		for p, v := range t.All() {
			row := make([]any, 0, len(p)+1)
			for _, k := range p {
				row = append(row, k)
			}
			if !yield(append(row, v)) {
				return
			}
		}
	}
}

// Subtree returns an iterator over all leaves under prefix, with their
// full paths. If prefix addresses a leaf, only this leaf is yielded.
// An empty prefix is the whole tree, a missing prefix yields nothing.
func (t *Tree[K, V]) Subtree(prefix ...K) iter.Seq2[Path[K], V] {
	return func(yield func(Path[K], V) bool) {
		if t == nil {
			return
		}

		if len(prefix) == 0 {
			t.root.walk(nil, yield)
			return
		}

		e, ok := t.root.find(prefix)
		if !ok {
			return
		}

		if e.isLeaf() {
			yield(Path[K](prefix).Clone(), e.val)
			return
		}

		e.kids.walk(prefix, yield)
	}
}
