// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"strconv"

	"github.com/gaissmai/ndtree/numtree"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
)

// leafKind bundles the parsing and the arithmetic of a leaf type.
type leafKind[V any] struct {
	parse func(string) (V, error)
	arith numtree.Arithmetic[V]
}

var floatLeaves = leafKind[float64]{
	parse: func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
	arith: numtree.Numbers[float64]{},
}

var decimalLeaves = leafKind[decimal.Decimal]{
	parse: decimal.NewFromString,
	arith: numtree.Decimals{},
}

// dispatch runs the float64 or, with --decimal, the decimal
// instance of a command.
func dispatch(
	floatFn func(*cli.Context, leafKind[float64]) error,
	decimalFn func(*cli.Context, leafKind[decimal.Decimal]) error,
) cli.ActionFunc {
	return func(cctx *cli.Context) error {
		if cctx.Bool("decimal") {
			return decimalFn(cctx, decimalLeaves)
		}
		return floatFn(cctx, floatLeaves)
	}
}

// load reads the document name into a tree with k.arith attached.
func (k leafKind[V]) load(cctx *cli.Context, name string) (*numtree.NumTree[string, V], error) {
	tree, err := loadFile(name, k.parse)
	if err != nil {
		return nil, err
	}
	logger(cctx).Debug("document loaded", "file", name, "leaves", tree.Len())
	return numtree.Wrap(tree, k.arith), nil
}
