// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ndtree_test

import (
	"errors"
	"fmt"

	"github.com/gaissmai/ndtree"
)

func ExampleTree_All() {
	farm := new(ndtree.Tree[string, int])
	farm.Set(10, "T1", "blade", "Mx")
	farm.Set(4, "T1", "tower", "Mx")
	farm.Set(4, "T2", "tower", "Mx")
	farm.Set(2, "T2", "gearbox", "Mx", "sensor_1")

	for path, val := range farm.All() {
		fmt.Println(path, val)
	}

	fmt.Println("len:", farm.Len())

	// Output:
	// T1.blade.Mx 10
	// T1.tower.Mx 4
	// T2.tower.Mx 4
	// T2.gearbox.Mx.sensor_1 2
	// len: 4
}

func ExampleTree_Delete() {
	tree := new(ndtree.Tree[string, int])
	tree.Set(0, "a", "a")
	tree.Set(1, "a", "b")

	_ = tree.Delete("a", "a")
	fmt.Println(tree.ToMap())

	// the emptied branch a is pruned
	_ = tree.Delete("a", "b")
	fmt.Println(tree.ToMap())

	err := tree.Delete("a", "b")
	fmt.Println(errors.Is(err, ndtree.ErrKeyNotFound))

	// Output:
	// map[a:map[b:1]]
	// map[]
	// true
}

func ExampleTree_Extract() {
	tree := ndtree.FromProduct([][]string{{"a", "b"}, {"x", "y"}}, 0)

	xs, _ := tree.Extract("", "x")
	for row := range xs.Rows() {
		fmt.Println(row...)
	}

	a, _ := tree.Extract("a")
	fmt.Println(a.ToMap())

	// Output:
	// a x 0
	// b x 0
	// map[a:map[x:0 y:0]]
}

func ExampleFromProductValues() {
	tree, err := ndtree.FromProductValues([][]string{{"a", "b"}, {"x", "y"}}, []int{0, 1, 2, 3})
	if err != nil {
		panic(err)
	}
	fmt.Println(tree.ToMap())

	_, err = ndtree.FromProductValues([][]string{{"a", "b"}, {"x", "y"}}, []int{0, 1})
	fmt.Println(err)

	// Output:
	// map[a:map[x:0 y:1] b:map[x:2 y:3]]
	// ndtree: length mismatch: product of 4 paths, 2 values
}
