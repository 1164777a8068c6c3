// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ndtree

import (
	"github.com/gaissmai/ndtree/internal/value"
)

// Extract returns a new tree with the entries selected by pattern,
// the paths are kept in full.
//
// The zero value of K is a wildcard token, for string tokens this is
// the empty string and for int tokens it is 0. A stored zero token can
// not be selected literally, a 0 in the pattern matches any token.
// Get and the other path operations still reach it.
//
// With a wildcard in the pattern, every leaf is
// selected whose path is at least as long as the pattern and whose
// leading tokens match all non-wildcard positions. Shorter paths are
// skipped and no match at all is not an error, the result is empty.
//
// Without a wildcard the pattern is a plain path and the leaf or the
// whole branch at this path is selected. A missing path is reported
// with a *KeyError, like Get. An empty pattern selects the whole tree.
//
// Leaf values are cloned if V implements Cloner[V].
//
//	t: {a: {x: 0, y: 0}, b: {x: 0, y: 0}}
//
//	t.Extract("a")      ->  {a: {x: 0, y: 0}}
//	t.Extract("", "x")  ->  {a: {x: 0}, b: {x: 0}}
func (t *Tree[K, V]) Extract(pattern ...K) (*Tree[K, V], error) {
	out := new(Tree[K, V])
	cloneFn := value.CloneFnFactory[V]()

	if t == nil {
		if len(pattern) == 0 || hasWildcard(pattern) {
			return out, nil
		}
		return nil, keyError(pattern)
	}

	if len(pattern) == 0 {
		return t.Clone(), nil
	}

	if hasWildcard(pattern) {
		for p, v := range t.All() {
			if !p.Match(pattern) {
				continue
			}
			out.Set(cloneFn.Copy(v), p...)
		}
		return out, nil
	}

	if !t.HasPrefix(pattern...) {
		return nil, keyError(pattern)
	}

	for p, v := range t.Subtree(pattern...) {
		out.Set(cloneFn.Copy(v), p...)
	}
	return out, nil
}
