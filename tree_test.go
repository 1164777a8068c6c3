// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ndtree

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustFromMap is a test helper.
func mustFromMap[V any](t *testing.T, m map[string]any) *Tree[string, V] {
	t.Helper()
	tree, err := FromMap[string, V](m)
	require.NoError(t, err)
	return tree
}

func TestZeroValue(t *testing.T) {
	t.Parallel()

	tree := new(Tree[string, int])
	assert.Equal(t, 0, tree.Len())
	assert.True(t, tree.IsEmpty())
	assert.False(t, tree.Contains("a"))

	_, err := tree.Get("a")
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.ErrorIs(t, tree.Delete("a"), ErrKeyNotFound)

	tree.Set(1, "a")
	assert.Equal(t, 1, tree.Len())
}

func TestNilTree(t *testing.T) {
	t.Parallel()

	var tree *Tree[string, int]
	assert.Equal(t, 0, tree.Len())
	assert.True(t, tree.IsEmpty())
	assert.False(t, tree.Contains("a"))
	assert.False(t, tree.HasPrefix("a"))

	for range tree.All() {
		t.Fatal("nil tree must not yield")
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	tree := mustFromMap[int](t, map[string]any{"a": map[string]any{"a": 0}})

	tests := []struct {
		name    string
		path    []string
		want    int
		wantErr bool
	}{
		{name: "leaf", path: []string{"a", "a"}, want: 0},
		{name: "missing top", path: []string{"z"}, wantErr: true},
		{name: "missing deep", path: []string{"a", "z"}, wantErr: true},
		{name: "ends on branch", path: []string{"a"}, wantErr: true},
		{name: "leaf hit early", path: []string{"a", "a", "a"}, wantErr: true},
		{name: "empty path", path: nil, wantErr: true},
	}

	for _, tt := range tests {
		got, err := tree.Get(tt.path...)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrKeyNotFound, tt.name)

			var ke *KeyError[string]
			require.True(t, errors.As(err, &ke), tt.name)
			assert.Equal(t, Path[string](tt.path), ke.Path, tt.name)
			continue
		}
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func TestContains(t *testing.T) {
	t.Parallel()

	tree := mustFromMap[int](t, map[string]any{"a": map[string]any{"a": 0}})

	assert.True(t, tree.Contains("a", "a"))
	assert.False(t, tree.Contains("b"))
	assert.False(t, tree.Contains("a"), "branch is no leaf")

	assert.True(t, tree.HasPrefix("a"))
	assert.True(t, tree.HasPrefix("a", "a"))
	assert.False(t, tree.HasPrefix("a", "a", "a"))
	assert.False(t, tree.HasPrefix())
}

func TestSet(t *testing.T) {
	t.Parallel()

	tree := new(Tree[string, int])
	tree.Set(0, "a", "a", "a")
	tree.Set(1, "a", "b", "a")

	got, err := tree.Get("a", "a", "a")
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = tree.Get("a", "b", "a")
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	assert.Equal(t, 2, tree.Len())
}

func TestSetLastWins(t *testing.T) {
	t.Parallel()

	tree := new(Tree[string, int])
	for i := range 10 {
		tree.Set(i, "x", "y")
	}

	got, err := tree.Get("x", "y")
	require.NoError(t, err)
	assert.Equal(t, 9, got)
	assert.Equal(t, 1, tree.Len())
}

func TestSetThroughLeaf(t *testing.T) {
	t.Parallel()

	tree := new(Tree[string, int])
	tree.Set(1, "a")
	tree.Set(2, "b")

	// the leaf a is replaced by a branch
	tree.Set(3, "a", "x")

	assert.False(t, tree.Contains("a"))
	got, err := tree.Get("a", "x")
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	// the branch a is replaced by a leaf
	tree.Set(4, "a")
	assert.False(t, tree.HasPrefix("a", "x"))
	assert.Equal(t, 2, tree.Len())

	// a keeps its position in front of b
	assert.Equal(t, []Path[string]{{"a"}, {"b"}}, slices.Collect(tree.Keys()))
}

func TestSetEmptyPathPanics(t *testing.T) {
	t.Parallel()

	tree := new(Tree[string, int])
	assert.Panics(t, func() { tree.Set(1) })
}

func TestDeletePruning(t *testing.T) {
	t.Parallel()

	tree := mustFromMap[int](t, map[string]any{"a": map[string]any{"a": 0, "b": 1}})

	require.NoError(t, tree.Delete("a", "a"))
	assert.Equal(t, map[string]any{"a": map[string]any{"b": 1}}, tree.ToMap())

	require.NoError(t, tree.Delete("a", "b"))
	assert.Equal(t, map[string]any{}, tree.ToMap())
	assert.False(t, tree.HasPrefix("a"))
}

func TestDelete(t *testing.T) {
	t.Parallel()

	tree := new(Tree[string, int])
	tree.Set(0, "a", "a", "a")
	tree.Set(1, "a", "b", "a")
	tree.Set(2, "b", "a")
	tree.Set(2, "b", "b")

	require.NoError(t, tree.Delete("a", "a", "a"))
	assert.False(t, tree.Contains("a", "a", "a"))
	assert.False(t, tree.HasPrefix("a", "a"), "empty branch pruned")
	assert.True(t, tree.HasPrefix("a"))

	// a whole branch
	require.NoError(t, tree.Delete("a", "b"))
	assert.False(t, tree.HasPrefix("a"))

	require.NoError(t, tree.Delete("b"))
	assert.True(t, tree.Equal(new(Tree[string, int])))
	assert.True(t, tree.IsEmpty())
}

func TestDeleteMissing(t *testing.T) {
	t.Parallel()

	tree := mustFromMap[int](t, map[string]any{"a": map[string]any{"a": 0}})

	for _, path := range [][]string{{"z"}, {"a", "z"}, {"a", "a", "a"}, {}} {
		err := tree.Delete(path...)
		require.ErrorIs(t, err, ErrKeyNotFound, "%v", path)
	}

	// nothing changed
	assert.Equal(t, 1, tree.Len())
}

func TestDeleteDeepPruning(t *testing.T) {
	t.Parallel()

	tree := new(Tree[int, string])
	path := make([]int, 100)
	for i := range path {
		path[i] = i + 1
	}

	tree.Set("deep", path...)
	tree.Set("shallow", 1, 2, 42)

	require.NoError(t, tree.Delete(path...))

	// pruned up to the branch that still holds a sibling
	assert.True(t, tree.HasPrefix(1, 2))
	assert.False(t, tree.HasPrefix(1, 2, 3))
	assert.Equal(t, 1, tree.Len())
}

func TestPop(t *testing.T) {
	t.Parallel()

	tree := new(Tree[string, int])
	tree.Set(7, "a", "b")

	got, err := tree.Pop("a", "b")
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.True(t, tree.IsEmpty())

	_, err = tree.Pop("a", "b")
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestLenMatchesIteration(t *testing.T) {
	t.Parallel()

	tree := FromProduct([][]string{{"a", "b", "c"}, {"x", "y"}, {"1", "2"}}, 0)
	assert.Equal(t, 12, tree.Len())

	require.NoError(t, tree.Delete("a", "x", "1"))
	require.NoError(t, tree.Delete("b"))

	n := 0
	for range tree.All() {
		n++
	}
	assert.Equal(t, 7, n)
	assert.Equal(t, n, tree.Len())
}

func TestPathString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a.b.c", Path[string]{"a", "b", "c"}.String())
	assert.Equal(t, "1.2", Path[int]{1, 2}.String())
	assert.Equal(t, "", Path[string]{}.String())

	err := keyError([]string{"x", "y"})
	assert.EqualError(t, err, "ndtree: key not found: x.y")
}

func TestPathMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    Path[string]
		pattern Path[string]
		want    bool
	}{
		{Path[string]{"a", "x"}, Path[string]{"", "x"}, true},
		{Path[string]{"a", "y"}, Path[string]{"", "x"}, false},
		{Path[string]{"a", "x", "1"}, Path[string]{"", "x"}, true},
		{Path[string]{"a"}, Path[string]{"", "x"}, false},
		{Path[string]{"a", "x"}, Path[string]{"", ""}, true},
		{Path[string]{"a", "x"}, Path[string]{"a"}, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.path.Match(tt.pattern), "%v ~ %v", tt.path, tt.pattern)
	}
}
