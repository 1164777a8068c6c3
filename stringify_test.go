// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ndtree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringEmpty(t *testing.T) {
	t.Parallel()

	tree := new(Tree[string, int])
	assert.NotContains(t, tree.String(), "──")
}

func TestString(t *testing.T) {
	t.Parallel()

	tree := new(Tree[string, int])
	tree.Set(10, "T1", "blade", "Mx")
	tree.Set(4, "T1", "tower", "Mx")
	tree.Set(3, "T2")

	s := tree.String()

	// every token and leaf shows up once, in insertion order
	want := []string{"T1", "blade", "Mx: 10", "tower", "Mx: 4", "T2: 3"}
	last := -1
	for _, w := range want {
		idx := strings.Index(s, w)
		require.GreaterOrEqual(t, idx, 0, "missing %q in\n%s", w, s)
		assert.Greater(t, idx, last, "%q out of order in\n%s", w, s)
		last = idx
	}

	// the last kid of the root is drawn with the end glyph
	assert.Contains(t, s, "└── T2: 3")
}

func TestFprintMatchesString(t *testing.T) {
	t.Parallel()

	tree := FromProduct([][]string{{"a", "b"}, {"x", "y"}}, 1)

	w := new(bytes.Buffer)
	require.NoError(t, tree.Fprint(w))
	assert.Equal(t, tree.String(), w.String())

	text, err := tree.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, tree.String(), string(text))
}
