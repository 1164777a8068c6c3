// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ndtree

import (
	"fmt"
	"strings"
)

// Path is an ordered sequence of tokens identifying an entry from the root.
type Path[K comparable] []K

// String joins the tokens with a dot.
func (p Path[K]) String() string {
	var sb strings.Builder
	for i, k := range p {
		if i > 0 {
			sb.WriteByte('.')
		}
		fmt.Fprint(&sb, k)
	}
	return sb.String()
}

// Clone returns a copy of p that does not share the backing array.
func (p Path[K]) Clone() Path[K] {
	if p == nil {
		return nil
	}
	c := make(Path[K], len(p))
	copy(c, p)
	return c
}

// Equal reports whether p and o have the same tokens in the same order.
func (p Path[K]) Equal(o Path[K]) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether p starts with prefix.
func (p Path[K]) HasPrefix(prefix Path[K]) bool {
	return len(p) >= len(prefix) && p[:len(prefix)].Equal(prefix)
}

// Match reports whether the leading tokens of p match the pattern
// position by position. The zero value of K in the pattern is a
// wildcard, so a zero token of p is only matched by a wildcard.
// Paths shorter than the pattern never match.
func (p Path[K]) Match(pattern Path[K]) bool {
	if len(p) < len(pattern) {
		return false
	}

	var wildcard K
	for i, k := range pattern {
		if k == wildcard {
			continue
		}
		if k != p[i] {
			return false
		}
	}
	return true
}

// hasWildcard reports whether the pattern contains the zero token.
func hasWildcard[K comparable](pattern []K) bool {
	var wildcard K
	for _, k := range pattern {
		if k == wildcard {
			return true
		}
	}
	return false
}

// appendKey returns a fresh path of prefix followed by k,
// the result never shares memory with prefix.
func appendKey[K comparable](prefix []K, k K) Path[K] {
	p := make(Path[K], len(prefix)+1)
	copy(p, prefix)
	p[len(prefix)] = k
	return p
}
