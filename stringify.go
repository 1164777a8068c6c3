// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ndtree

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Tree.Fprint].
func (t *Tree[K, V]) MarshalText() ([]byte, error) {
	return t.diagram().Bytes(), nil
}

// String returns a hierarchical tree diagram, just a wrapper for [Tree.Fprint].
func (t *Tree[K, V]) String() string {
	return t.diagram().String()
}

// Fprint writes a hierarchical tree diagram of the branches and leaves
// with default formatted tokens and values to w, siblings in insertion
// order.
//
//	.
//	├── T1
//	│   ├── blade
//	│   │   └── Mx: 10
//	│   └── tower
//	│       └── Mx: 4
//	└── T2
//	    └── tower
//	        └── Mx: 4
func (t *Tree[K, V]) Fprint(w io.Writer) error {
	_, err := w.Write(t.diagram().Bytes())
	return err
}

// diagram builds the treeprint representation on an explicit stack.
// All kids of a branch are added at once, so the siblings keep their order.
func (t *Tree[K, V]) diagram() treeprint.Tree {
	tp := treeprint.New()
	if t == nil {
		return tp
	}

	type pair struct {
		n      *node[K, V]
		branch treeprint.Tree
	}

	stack := []pair{{n: &t.root, branch: tp}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, k := range p.n.keys {
			e := p.n.items[k]
			if e.isLeaf() {
				p.branch.AddNode(fmt.Sprintf("%v: %v", k, e.val))
				continue
			}
			stack = append(stack, pair{n: e.kids, branch: p.branch.AddBranch(fmt.Sprint(k))})
		}
	}

	return tp
}
