// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gaissmai/ndtree"
	"gopkg.in/yaml.v3"
)

var errDocument = errors.New("unsupported document")

// loadFile reads a YAML or JSON document into a tree, see loadDocument.
func loadFile[V any](name string, parse func(string) (V, error)) (*ndtree.Tree[string, V], error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	tree, err := loadDocument(data, parse)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return tree, nil
}

// loadDocument decodes nested mappings with scalar leaves into a tree,
// the siblings keep their document order. Leaf scalars are converted
// with parse. Empty mappings are dropped, sequences are rejected.
func loadDocument[V any](data []byte, parse func(string) (V, error)) (*ndtree.Tree[string, V], error) {
	tree := ndtree.New[string, V]()

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	// empty input
	if doc.Kind == 0 {
		return tree, nil
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: top level must be a mapping", errDocument, root.Line)
	}

	type item struct {
		path []string
		node *yaml.Node
	}

	// push the pairs of a mapping in reverse,
	// the pops are in document order then
	var stack []item
	pushPairs := func(prefix []string, m *yaml.Node) {
		for i := len(m.Content) - 2; i >= 0; i -= 2 {
			path := make([]string, len(prefix), len(prefix)+1)
			copy(path, prefix)
			stack = append(stack, item{path: append(path, m.Content[i].Value), node: m.Content[i+1]})
		}
	}

	pushPairs(nil, root)

	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := it.node
		if n.Kind == yaml.AliasNode {
			n = n.Alias
		}

		switch n.Kind {
		case yaml.MappingNode:
			pushPairs(it.path, n)
		case yaml.ScalarNode:
			v, err := parse(n.Value)
			if err != nil {
				return nil, fmt.Errorf("line %d: %s: %w", n.Line, strings.Join(it.path, "."), err)
			}
			tree.Set(v, it.path...)
		default:
			return nil, fmt.Errorf("%w: line %d: %s: only mappings and scalars allowed", errDocument, n.Line, strings.Join(it.path, "."))
		}
	}

	return tree, nil
}

// parsePath splits s at sep, a segment "*" is the wildcard
// and so is an empty segment. An empty s is the empty path.
func parsePath(s, sep string) []string {
	if s == "" {
		return nil
	}

	path := strings.Split(s, sep)
	for i, tok := range path {
		if tok == "*" {
			path[i] = ""
		}
	}
	return path
}
