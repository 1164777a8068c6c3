// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ndtree

// node is a branch of the tree. The children are kept in a map for
// lookup and in a slice for the insertion order of the siblings.
type node[K comparable, V any] struct {
	keys  []K
	items map[K]*entry[K, V]
}

// entry is either a branch, kids != nil, or a leaf holding val.
type entry[K comparable, V any] struct {
	kids *node[K, V]
	val  V
}

func newNode[K comparable, V any]() *node[K, V] {
	return &node[K, V]{items: make(map[K]*entry[K, V])}
}

func (e *entry[K, V]) isLeaf() bool {
	return e.kids == nil
}

// isEmpty reports whether the branch has no children.
// The zero node is empty.
func (n *node[K, V]) isEmpty() bool {
	return n == nil || len(n.keys) == 0
}

// get returns the child entry for k.
func (n *node[K, V]) get(k K) (*entry[K, V], bool) {
	if n == nil || n.items == nil {
		return nil, false
	}
	e, ok := n.items[k]
	return e, ok
}

// put inserts or replaces the child for k.
// A replaced child keeps its position among the siblings.
func (n *node[K, V]) put(k K, e *entry[K, V]) {
	if n.items == nil {
		n.items = make(map[K]*entry[K, V])
	}
	if _, exists := n.items[k]; !exists {
		n.keys = append(n.keys, k)
	}
	n.items[k] = e
}

// remove deletes the child for k, returns false if k was not present.
func (n *node[K, V]) remove(k K) bool {
	if _, ok := n.get(k); !ok {
		return false
	}
	delete(n.items, k)

	for i, key := range n.keys {
		if key == k {
			// clear the tail for the GC
			copy(n.keys[i:], n.keys[i+1:])
			var zero K
			n.keys[len(n.keys)-1] = zero
			n.keys = n.keys[:len(n.keys)-1]
			break
		}
	}
	return true
}

// branch returns the child branch for k, a missing child or a leaf
// is replaced by a new empty branch.
func (n *node[K, V]) branch(k K) *node[K, V] {
	if e, ok := n.get(k); ok && !e.isLeaf() {
		return e.kids
	}
	kids := newNode[K, V]()
	n.put(k, &entry[K, V]{kids: kids})
	return kids
}

// find walks path from n and returns the addressed entry, leaf or branch.
func (n *node[K, V]) find(path []K) (*entry[K, V], bool) {
	if len(path) == 0 {
		return nil, false
	}

	for depth, k := range path {
		e, ok := n.get(k)
		if !ok {
			return nil, false
		}

		// last token, found
		if depth == len(path)-1 {
			return e, true
		}

		// a leaf but more tokens remain
		if e.isLeaf() {
			return nil, false
		}

		// go down
		n = e.kids
	}

	panic("unreachable")
}

// frame is a work item of the depth-first traversal.
type frame[K comparable, V any] struct {
	n *node[K, V]
	i int
}

// walk yields all leaves below n in pre-order, the yielded paths
// start with prefix. It returns false if yield stopped the walk.
//
// The traversal uses an explicit stack instead of recursion,
// the depth of the tree is only bounded by memory.
func (n *node[K, V]) walk(prefix []K, yield func(Path[K], V) bool) bool {
	if n.isEmpty() {
		return true
	}

	path := Path[K](prefix).Clone()
	stack := []frame[K, V]{{n: n}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// all kids of this branch done, go up
		if top.i == len(top.n.keys) {
			stack = stack[:len(stack)-1]

			// the bottom frame has no token of its own
			if len(stack) > 0 {
				path = path[:len(path)-1]
			}
			continue
		}

		k := top.n.keys[top.i]
		top.i++
		e := top.n.items[k]

		// go down, top is invalid after the append
		if !e.isLeaf() {
			path = append(path, k)
			stack = append(stack, frame[K, V]{n: e.kids})
			continue
		}

		if !yield(appendKey(path, k), e.val) {
			return false
		}
	}

	return true
}

// cloneRec returns a deep copy of n, leaf values are copied with cloneFn
// if not nil. Empty branches are copied too.
// Despite the name, the copy runs on an explicit stack.
func (n *node[K, V]) cloneRec(cloneFn func(V) V) *node[K, V] {
	if n == nil {
		return nil
	}

	type pair struct{ src, dst *node[K, V] }

	root := newNode[K, V]()
	stack := []pair{{src: n, dst: root}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		p.dst.keys = make([]K, 0, len(p.src.keys))
		for _, k := range p.src.keys {
			e := p.src.items[k]

			if !e.isLeaf() {
				kids := newNode[K, V]()
				p.dst.put(k, &entry[K, V]{kids: kids})
				stack = append(stack, pair{src: e.kids, dst: kids})
				continue
			}

			val := e.val
			if cloneFn != nil {
				val = cloneFn(val)
			}
			p.dst.put(k, &entry[K, V]{val: val})
		}
	}

	return root
}
