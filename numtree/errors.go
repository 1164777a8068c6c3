// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package numtree

import "errors"

var (
	// ErrIncompatibleKeys is returned by tree-tree arithmetic when a leaf
	// path of the right operand is not present in the left operand.
	ErrIncompatibleKeys = errors.New("numtree: incompatible keys")

	// ErrUnsupportedOperand is returned when the right operand is neither
	// a tree of the same kind nor a scalar, or the operator is unknown.
	ErrUnsupportedOperand = errors.New("numtree: unsupported operand type")

	// ErrEmptyTree is returned by Reduce on a tree without leaves.
	ErrEmptyTree = errors.New("numtree: empty tree")

	// ErrDivisionByZero is returned by /, // and % with a zero divisor,
	// and by Mean and Std on too small trees.
	ErrDivisionByZero = errors.New("numtree: division by zero")
)
