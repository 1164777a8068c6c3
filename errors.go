// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ndtree

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is wrapped by every *KeyError.
	ErrKeyNotFound = errors.New("ndtree: key not found")

	// ErrLengthMismatch is returned by the builders when the number of
	// values differs from the number of generated paths.
	ErrLengthMismatch = errors.New("ndtree: length mismatch")

	// ErrInvalidValue is returned by FromMap for values that are
	// neither a nested map[K]any nor a leaf of type V.
	ErrInvalidValue = errors.New("ndtree: invalid value")
)

// KeyError reports a path that does not address an entry of the tree.
// A path is also missing if the walk hits a leaf before all tokens
// are consumed.
type KeyError[K comparable] struct {
	Path Path[K]
}

func (e *KeyError[K]) Error() string {
	return fmt.Sprintf("ndtree: key not found: %v", e.Path)
}

// Unwrap returns ErrKeyNotFound.
func (e *KeyError[K]) Unwrap() error {
	return ErrKeyNotFound
}

func keyError[K comparable](path []K) error {
	return &KeyError[K]{Path: Path[K](path).Clone()}
}
