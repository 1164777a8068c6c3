// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ndtree

import (
	"sync"
)

// Tree is a nested, path-keyed tree with leaf values V.
//
// The zero value is ready to use.
//
// A Tree must not be copied by value; always pass by pointer.
// Use [Tree.Clone] for an independent deep copy.
type Tree[K comparable, V any] struct {
	// used by -copylocks checker from `go vet`.
	_ [0]sync.Mutex

	root node[K, V]
}

// New returns an empty tree, just a convenience for new(Tree[K, V]).
func New[K comparable, V any]() *Tree[K, V] {
	return new(Tree[K, V])
}

// Get returns the leaf value at path.
//
// It returns a *KeyError if a token is missing, if the walk hits a leaf
// before the path is exhausted, or if the path ends on a branch.
func (t *Tree[K, V]) Get(path ...K) (val V, err error) {
	val, ok := t.Lookup(path...)
	if !ok {
		return val, keyError(path)
	}
	return val, nil
}

// Lookup returns the leaf value at path and true,
// or the zero value and false if path addresses no leaf.
func (t *Tree[K, V]) Lookup(path ...K) (val V, ok bool) {
	if t == nil {
		return
	}

	e, found := t.root.find(path)
	if !found || !e.isLeaf() {
		return
	}
	return e.val, true
}

// Contains reports whether path addresses a leaf,
// Contains is true iff Get succeeds.
func (t *Tree[K, V]) Contains(path ...K) bool {
	_, ok := t.Lookup(path...)
	return ok
}

// HasPrefix reports whether path addresses a leaf or a branch.
func (t *Tree[K, V]) HasPrefix(path ...K) bool {
	if t == nil {
		return false
	}
	_, ok := t.root.find(path)
	return ok
}

// Set stores val at path.
//
// Missing intermediate branches are created, an intermediate leaf
// is replaced by a branch and a branch at the final token is replaced
// by the leaf. A replaced entry keeps its position among its siblings.
//
// Set panics if path is empty.
func (t *Tree[K, V]) Set(val V, path ...K) {
	if len(path) == 0 {
		panic("ndtree: Set with empty path")
	}

	n := &t.root
	last := len(path) - 1

	// walk or create
	for _, k := range path[:last] {
		n = n.branch(k)
	}

	n.put(path[last], &entry[K, V]{val: val})
}

// Delete removes the entry at path, a leaf or, with all its leaves,
// a branch. It returns a *KeyError under the same conditions as Get,
// except that a branch is a valid target.
//
// Every ancestor branch left empty by the deletion is removed too,
// the root itself is never removed.
func (t *Tree[K, V]) Delete(path ...K) error {
	if len(path) == 0 {
		return keyError(path)
	}

	// stack of the traversed branches in order to
	// purge dangling paths after deletion
	stack := make([]*node[K, V], 0, len(path))

	n := &t.root
	last := len(path) - 1

	for _, k := range path[:last] {
		stack = append(stack, n)

		e, ok := n.get(k)
		if !ok || e.isLeaf() {
			return keyError(path)
		}
		n = e.kids
	}
	stack = append(stack, n)

	if !n.remove(path[last]) {
		return keyError(path)
	}

	// purge dangling path, bottom up
	for depth := len(stack) - 1; depth > 0; depth-- {
		if !stack[depth].isEmpty() {
			break
		}
		stack[depth-1].remove(path[depth-1])
	}

	return nil
}

// Pop returns the leaf value at path and deletes it,
// see Get and Delete for the error conditions.
func (t *Tree[K, V]) Pop(path ...K) (val V, err error) {
	if val, err = t.Get(path...); err != nil {
		return val, err
	}
	return val, t.Delete(path...)
}

// Len returns the number of leaves, computed by a full traversal.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}

	n := 0
	t.root.walk(nil, func(Path[K], V) bool {
		n++
		return true
	})
	return n
}

// IsEmpty reports whether the tree has no leaves.
func (t *Tree[K, V]) IsEmpty() bool {
	if t == nil {
		return true
	}

	empty := true
	t.root.walk(nil, func(Path[K], V) bool {
		empty = false
		return false
	})
	return empty
}
