// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ndtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A simple type that implements Equaler for testing.
type stringVal string

func (v stringVal) Equal(other stringVal) bool {
	return v == other
}

func TestTreeEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		buildA    func() *Tree[string, stringVal]
		buildB    func() *Tree[string, stringVal]
		wantEqual bool
	}{
		{
			name:      "empty trees",
			buildA:    func() *Tree[string, stringVal] { return new(Tree[string, stringVal]) },
			buildB:    func() *Tree[string, stringVal] { return new(Tree[string, stringVal]) },
			wantEqual: true,
		},
		{
			name: "same single entry",
			buildA: func() *Tree[string, stringVal] {
				tree := new(Tree[string, stringVal])
				tree.Set("foo", "a", "b")
				return tree
			},
			buildB: func() *Tree[string, stringVal] {
				tree := new(Tree[string, stringVal])
				tree.Set("foo", "a", "b")
				return tree
			},
			wantEqual: true,
		},
		{
			name: "different values for same path",
			buildA: func() *Tree[string, stringVal] {
				tree := new(Tree[string, stringVal])
				tree.Set("foo", "a", "b")
				return tree
			},
			buildB: func() *Tree[string, stringVal] {
				tree := new(Tree[string, stringVal])
				tree.Set("bar", "a", "b")
				return tree
			},
			wantEqual: false,
		},
		{
			name: "different paths",
			buildA: func() *Tree[string, stringVal] {
				tree := new(Tree[string, stringVal])
				tree.Set("foo", "a", "b")
				return tree
			},
			buildB: func() *Tree[string, stringVal] {
				tree := new(Tree[string, stringVal])
				tree.Set("foo", "a", "c")
				return tree
			},
			wantEqual: false,
		},
		{
			name: "subset",
			buildA: func() *Tree[string, stringVal] {
				tree := new(Tree[string, stringVal])
				tree.Set("foo", "a", "b")
				return tree
			},
			buildB: func() *Tree[string, stringVal] {
				tree := new(Tree[string, stringVal])
				tree.Set("foo", "a", "b")
				tree.Set("foo", "a", "c")
				return tree
			},
			wantEqual: false,
		},
		{
			name: "same entries, different insert order",
			buildA: func() *Tree[string, stringVal] {
				tree := new(Tree[string, stringVal])
				tree.Set("foo", "a", "b")
				tree.Set("bar", "x")
				return tree
			},
			buildB: func() *Tree[string, stringVal] {
				tree := new(Tree[string, stringVal])
				tree.Set("bar", "x")
				tree.Set("foo", "a", "b")
				return tree
			},
			wantEqual: true,
		},
	}

	for _, tt := range tests {
		a, b := tt.buildA(), tt.buildB()
		assert.Equal(t, tt.wantEqual, a.Equal(b), tt.name)
		assert.Equal(t, tt.wantEqual, b.Equal(a), tt.name+" (symmetric)")
	}
}

func TestTreeEqualDeepEqualFallback(t *testing.T) {
	t.Parallel()

	a := new(Tree[string, []int])
	b := new(Tree[string, []int])
	a.Set([]int{1, 2}, "x")
	b.Set([]int{1, 2}, "x")
	assert.True(t, a.Equal(b))

	b.Set([]int{1, 3}, "x")
	assert.False(t, a.Equal(b))
}

func TestTreeEqualNil(t *testing.T) {
	t.Parallel()

	var a *Tree[string, int]
	b := new(Tree[string, int])
	assert.True(t, a.Equal(nil))
	assert.True(t, a.Equal(b), "nil and empty have the same leaves")
	assert.True(t, b.Equal(a))
}
