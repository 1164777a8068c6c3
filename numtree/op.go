// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package numtree

import (
	"fmt"
	"strings"
)

// Op is an elementwise binary operator.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpFloorDiv
	OpMod
	OpPow
)

var opSymbols = [...]string{
	OpAdd:      "+",
	OpSub:      "-",
	OpMul:      "*",
	OpDiv:      "/",
	OpFloorDiv: "//",
	OpMod:      "%",
	OpPow:      "**",
}

var opNames = [...]string{
	OpAdd:      "add",
	OpSub:      "sub",
	OpMul:      "mul",
	OpDiv:      "div",
	OpFloorDiv: "floordiv",
	OpMod:      "mod",
	OpPow:      "pow",
}

// String returns the operator symbol.
func (op Op) String() string {
	if int(op) < len(opSymbols) {
		return opSymbols[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// Valid reports whether op is a known operator.
func (op Op) Valid() bool {
	return int(op) < len(opSymbols)
}

// ParseOp returns the operator for a name like "add" or "floordiv",
// or for a symbol like "+" or "//". Names are case insensitive.
func ParseOp(s string) (Op, error) {
	for i := range opSymbols {
		if s == opSymbols[i] || strings.EqualFold(s, opNames[i]) {
			return Op(i), nil
		}
	}
	return 0, fmt.Errorf("%w: operator %q", ErrUnsupportedOperand, s)
}
