// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gaissmai/ndtree"
	"github.com/gaissmai/ndtree/numtree"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
)

var cmdPrint = &cli.Command{
	Name:      "print",
	Usage:     "show the document as tree diagram",
	ArgsUsage: `<file>`,
	Action:    dispatch(runPrint[float64], runPrint[decimal.Decimal]),
}

var cmdLeaves = &cli.Command{
	Name:      "leaves",
	Aliases:   []string{"ls"},
	Usage:     "list all leaves as path and value",
	ArgsUsage: `<file>`,
	Action:    dispatch(runLeaves[float64], runLeaves[decimal.Decimal]),
}

var cmdGet = &cli.Command{
	Name:      "get",
	Usage:     "print the leaf value at path",
	ArgsUsage: `<file> <path>`,
	Action:    dispatch(runGet[float64], runGet[decimal.Decimal]),
}

var cmdExtract = &cli.Command{
	Name:      "extract",
	Usage:     "list the leaves selected by a pattern, * is the wildcard",
	ArgsUsage: `<file> <pattern>`,
	Action:    dispatch(runExtract[float64], runExtract[decimal.Decimal]),
}

var cmdJSON = &cli.Command{
	Name:      "json",
	Usage:     "convert the document to JSON in document order, optionally extracted by pattern",
	ArgsUsage: `<file> [pattern]`,
	Action:    dispatch(runJSON[float64], runJSON[decimal.Decimal]),
}

var cmdStats = &cli.Command{
	Name:      "stats",
	Usage:     "count, total, mean and sample deviation of the leaves",
	ArgsUsage: `<file>`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "pattern",
			Aliases: []string{"p"},
			Usage:   "restrict to the leaves selected by pattern",
		},
	},
	Action: dispatch(runStats[float64], runStats[decimal.Decimal]),
}

var cmdCalc = &cli.Command{
	Name:      "calc",
	Usage:     "elementwise arithmetic with a scalar or a second document",
	ArgsUsage: `<file>`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "op",
			Usage:    "operator, symbol or name: + - * / // % ** or add sub mul div floordiv mod pow",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "scalar",
			Usage: "right operand as number",
		},
		&cli.StringFlag{
			Name:  "with",
			Usage: "right operand as document file",
		},
	},
	Action: dispatch(runCalc[float64], runCalc[decimal.Decimal]),
}

// args returns exactly n positional arguments.
func args(cctx *cli.Context, n int) ([]string, error) {
	if cctx.NArg() != n {
		return nil, fmt.Errorf("%s: need %d argument(s): %s", cctx.Command.Name, n, cctx.Command.ArgsUsage)
	}
	return cctx.Args().Slice(), nil
}

func runPrint[V any](cctx *cli.Context, k leafKind[V]) error {
	a, err := args(cctx, 1)
	if err != nil {
		return err
	}

	tree, err := k.load(cctx, a[0])
	if err != nil {
		return err
	}

	return tree.Fprint(cctx.App.Writer)
}

func runLeaves[V any](cctx *cli.Context, k leafKind[V]) error {
	a, err := args(cctx, 1)
	if err != nil {
		return err
	}

	tree, err := k.load(cctx, a[0])
	if err != nil {
		return err
	}

	writeLeaves(cctx, tree.Tree)
	return nil
}

func runGet[V any](cctx *cli.Context, k leafKind[V]) error {
	a, err := args(cctx, 2)
	if err != nil {
		return err
	}

	tree, err := k.load(cctx, a[0])
	if err != nil {
		return err
	}

	val, err := tree.Get(parsePath(a[1], cctx.String("separator"))...)
	if err != nil {
		return err
	}

	fmt.Fprintln(cctx.App.Writer, val)
	return nil
}

func runExtract[V any](cctx *cli.Context, k leafKind[V]) error {
	a, err := args(cctx, 2)
	if err != nil {
		return err
	}

	tree, err := k.load(cctx, a[0])
	if err != nil {
		return err
	}

	sub, err := tree.Extract(parsePath(a[1], cctx.String("separator"))...)
	if err != nil {
		return err
	}
	logger(cctx).Debug("extracted", "pattern", a[1], "leaves", sub.Len())

	writeLeaves(cctx, sub.Tree)
	return nil
}

func runJSON[V any](cctx *cli.Context, k leafKind[V]) error {
	if cctx.NArg() < 1 || cctx.NArg() > 2 {
		return fmt.Errorf("json: need 1 or 2 arguments: %s", cctx.Command.ArgsUsage)
	}

	tree, err := k.load(cctx, cctx.Args().First())
	if err != nil {
		return err
	}

	if cctx.NArg() == 2 {
		if tree, err = tree.Extract(parsePath(cctx.Args().Get(1), cctx.String("separator"))...); err != nil {
			return err
		}
	}

	out, err := tree.MarshalJSON()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cctx.App.Writer, "%s\n", out)
	return err
}

func runStats[V any](cctx *cli.Context, k leafKind[V]) error {
	a, err := args(cctx, 1)
	if err != nil {
		return err
	}

	tree, err := k.load(cctx, a[0])
	if err != nil {
		return err
	}

	if pattern := cctx.String("pattern"); pattern != "" {
		if tree, err = tree.Extract(parsePath(pattern, cctx.String("separator"))...); err != nil {
			return err
		}
	}

	total, err := tree.Total()
	if err != nil {
		return err
	}

	w := cctx.App.Writer
	fmt.Fprintf(w, "count\t%d\n", tree.Len())
	fmt.Fprintf(w, "total\t%v\n", total)

	// mean and std are undefined for too small trees, not an error here
	mean, err := tree.Mean()
	if err := skipUndefined(cctx, "mean", err); err != nil {
		return err
	}
	if err == nil {
		fmt.Fprintf(w, "mean\t%v\n", mean)
	}

	std, err := tree.Std()
	if err := skipUndefined(cctx, "std", err); err != nil {
		return err
	}
	if err == nil {
		fmt.Fprintf(w, "std\t%v\n", std)
	}

	return nil
}

// skipUndefined logs and drops ErrDivisionByZero, other errors are returned.
func skipUndefined(cctx *cli.Context, stat string, err error) error {
	if errors.Is(err, numtree.ErrDivisionByZero) {
		logger(cctx).Warn("statistic undefined", "stat", stat, "err", err)
		return nil
	}
	return err
}

func runCalc[V any](cctx *cli.Context, k leafKind[V]) error {
	a, err := args(cctx, 1)
	if err != nil {
		return err
	}

	op, err := numtree.ParseOp(cctx.String("op"))
	if err != nil {
		return err
	}

	scalar, with := cctx.String("scalar"), cctx.String("with")
	if (scalar == "") == (with == "") {
		return fmt.Errorf("calc: need exactly one of --scalar or --with")
	}

	tree, err := k.load(cctx, a[0])
	if err != nil {
		return err
	}

	var other any
	if scalar != "" {
		if other, err = k.parse(scalar); err != nil {
			return fmt.Errorf("scalar %q: %w", scalar, err)
		}
	} else {
		if other, err = k.load(cctx, with); err != nil {
			return err
		}
	}

	result, err := tree.BinaryOp(op, other)
	if err != nil {
		return err
	}
	logger(cctx).Debug("calculated", "op", op.String(), "leaves", result.Len())

	writeLeaves(cctx, result.Tree)
	return nil
}

// writeLeaves writes one line per leaf, the path joined with the
// separator, a tab and the value.
func writeLeaves[V any](cctx *cli.Context, tree *ndtree.Tree[string, V]) {
	sep := cctx.String("separator")
	for path, val := range tree.All() {
		fmt.Fprintf(cctx.App.Writer, "%s\t%v\n", strings.Join(path, sep), val)
	}
}
