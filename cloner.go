// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ndtree

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/gaissmai/ndtree/internal/value"
)

// Cloner is an interface that enables deep cloning of values of type V.
// If a value implements Cloner[V], Tree methods such as Clone, ToMap,
// FromMap and Extract will use its Clone method to perform deep copies.
type Cloner[V any] interface {
	Clone() V
}

// Clone returns a deep copy of the tree, independent from the original.
// The values are cloned if V implements Cloner[V], otherwise copied.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	c := new(Tree[K, V])
	if t == nil {
		return c
	}

	root := t.root.cloneRec(value.CloneFnFactory[V]())
	c.root.keys = root.keys
	c.root.items = root.items
	return c
}

// ToMap returns a deep copy of the tree as native nested maps.
// Branches become map[K]any, leaves become values of type V,
// cloned if V implements Cloner[V].
func (t *Tree[K, V]) ToMap() map[K]any {
	out := make(map[K]any)
	if t == nil {
		return out
	}

	cloneFn := value.CloneFnFactory[V]()

	type pair struct {
		src *node[K, V]
		dst map[K]any
	}

	stack := []pair{{src: &t.root, dst: out}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, k := range p.src.keys {
			e := p.src.items[k]
			if e.isLeaf() {
				p.dst[k] = cloneFn.Copy(e.val)
				continue
			}

			m := make(map[K]any, len(e.kids.keys))
			p.dst[k] = m
			stack = append(stack, pair{src: e.kids, dst: m})
		}
	}

	return out
}

// FromMap returns a new tree built from native nested maps.
//
// Every value in m must be either a nested map[K]any, a branch, or
// a value of type V, a leaf. Any other value is reported with
// ErrInvalidValue. The structure is always copied, the leaf values are
// cloned if V implements Cloner[V].
//
// Native maps have no order, the siblings are inserted sorted by the
// fmt representation of their keys. Empty nested maps are kept as empty
// branches, so FromMap(m).ToMap() is equal to m.
func FromMap[K comparable, V any](m map[K]any) (*Tree[K, V], error) {
	t := new(Tree[K, V])
	cloneFn := value.CloneFnFactory[V]()

	type pair struct {
		src  map[K]any
		dst  *node[K, V]
		path Path[K]
	}

	stack := []pair{{src: m, dst: &t.root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, k := range sortedKeys(p.src) {
			switch v := p.src[k].(type) {
			case map[K]any:
				kids := newNode[K, V]()
				p.dst.put(k, &entry[K, V]{kids: kids})
				stack = append(stack, pair{src: v, dst: kids, path: appendKey(p.path, k)})
			case V:
				p.dst.put(k, &entry[K, V]{val: cloneFn.Copy(v)})
			default:
				return nil, fmt.Errorf("%w: %T at %v", ErrInvalidValue, v, appendKey(p.path, k))
			}
		}
	}

	return t, nil
}

// sortedKeys returns the keys of m sorted by their fmt representation.
func sortedKeys[K comparable](m map[K]any) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b K) int {
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	})
	return keys
}
