// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ndtree

import (
	"fmt"
	"iter"
)

// FromPaths returns a new tree with val stored at every path.
func FromPaths[K comparable, V any](paths [][]K, val V) *Tree[K, V] {
	t := new(Tree[K, V])
	for _, p := range paths {
		t.Set(val, p...)
	}
	return t
}

// FromPathsValues returns a new tree with vals[i] stored at paths[i].
// It returns ErrLengthMismatch if the slices differ in length.
func FromPathsValues[K comparable, V any](paths [][]K, vals []V) (*Tree[K, V], error) {
	if len(paths) != len(vals) {
		return nil, fmt.Errorf("%w: %d paths, %d values", ErrLengthMismatch, len(paths), len(vals))
	}

	t := new(Tree[K, V])
	for i, p := range paths {
		t.Set(vals[i], p...)
	}
	return t, nil
}

// FromProduct returns a new tree with val stored at every path
// of the cartesian product of the iterables, see Product.
func FromProduct[K comparable, V any](iterables [][]K, val V) *Tree[K, V] {
	t := new(Tree[K, V])
	for p := range Product(iterables) {
		t.Set(val, p...)
	}
	return t
}

// FromProductValues returns a new tree with the values stored positionally
// at the paths of the cartesian product of the iterables, in product order.
// It returns ErrLengthMismatch unless len(vals) equals the product size.
func FromProductValues[K comparable, V any](iterables [][]K, vals []V) (*Tree[K, V], error) {
	if size := productSize(iterables); size != len(vals) {
		return nil, fmt.Errorf("%w: product of %d paths, %d values", ErrLengthMismatch, size, len(vals))
	}

	t := new(Tree[K, V])
	i := 0
	for p := range Product(iterables) {
		t.Set(vals[i], p...)
		i++
	}
	return t, nil
}

// Product returns an iterator over the cartesian product of the iterables
// in odometer order, the last iterable advancing fastest.
//
//	Product([][]string{{"a", "b"}, {"x", "y"}})  ->  [a x] [a y] [b x] [b y]
//
// The product is empty if there are no iterables or if any of them is empty.
func Product[K comparable](iterables [][]K) iter.Seq[Path[K]] {
	return func(yield func(Path[K]) bool) {
		if productSize(iterables) == 0 {
			return
		}

		// odometer of indices, one per iterable
		idx := make([]int, len(iterables))

		for {
			p := make(Path[K], len(iterables))
			for i, j := range idx {
				p[i] = iterables[i][j]
			}
			if !yield(p) {
				return
			}

			// advance, rightmost wheel first
			i := len(idx) - 1
			for ; i >= 0; i-- {
				idx[i]++
				if idx[i] < len(iterables[i]) {
					break
				}
				idx[i] = 0
			}

			// all wheels wrapped around
			if i < 0 {
				return
			}
		}
	}
}

func productSize[K any](iterables [][]K) int {
	if len(iterables) == 0 {
		return 0
	}

	size := 1
	for _, it := range iterables {
		size *= len(it)
	}
	return size
}
