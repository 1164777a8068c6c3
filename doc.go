// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package ndtree provides nested, path-keyed trees.
//
// A [Tree] presents a flat dictionary interface over data that is stored
// as nested mappings. Keys are paths, ordered sequences of tokens, and
// values live at the leaves:
//
//	t := new(ndtree.Tree[string, int])
//	t.Set(10, "T1", "blade", "Mx")
//	t.Set(4, "T1", "tower", "Mx")
//
//	v, err := t.Get("T1", "blade", "Mx") // 10, nil
//
// Every method taking a path is variadic in its trailing argument, a single
// token and an explicit path are the same call:
//
//	t.Get("T1")                // one-token path
//	t.Get(ndtree.Path[string]{"T1", "blade", "Mx"}...)
//
// Deleting a leaf prunes every ancestor branch that becomes empty, up to
// but not including the root. Iteration over the leaves is depth-first in
// sibling insertion order and uses an explicit work list, so arbitrarily
// deep trees do not grow the call stack.
//
// [Tree.Extract] projects the tree with a wildcard pattern, the zero value
// of the token type (the empty string for string tokens) matches any token
// at its position:
//
//	towers, _ := t.Extract("", "tower")
//
// A Tree encodes to nested JSON objects with the members in sibling order,
// see [Tree.MarshalJSON], and prints as diagram with [Tree.Fprint].
//
// Elementwise arithmetic and statistics over numeric leaves are provided
// by the subpackage numtree.
//
// A Tree is not safe for concurrent use, callers must synchronize access
// themselves.
package ndtree
