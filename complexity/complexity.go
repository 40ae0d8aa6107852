// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package complexity lists common time complexity classes with examples.
package complexity

// Class is a growth rate of an algorithm's running time in the size of its
// input.
type Class struct {
	Notation string
	Name     string
	Example  string
}

// Classes lists common complexity classes from slowest to fastest growing.
func Classes() []Class {
	return []Class{
		{"O(1)", "Constant", "accessing an array element"},
		{"O(log n)", "Logarithmic", "binary search"},
		{"O(n)", "Linear", "linear search"},
		{"O(n log n)", "Linearithmic", "merge sort, quick sort"},
		{"O(n^2)", "Quadratic", "bubble sort, nested loops"},
		{"O(2^n)", "Exponential", "recursive fibonacci without memoization"},
	}
}
