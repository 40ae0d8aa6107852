// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package sorting provides the three elementary quadratic sorting algorithms.
// All of them reorder a slice in place into non-decreasing order, use O(1)
// additional space and are not guaranteed to be stable.
package sorting

import "golang.org/x/exp/constraints"

// Algorithm names an in-place sorting function for integer slices.
type Algorithm struct {
	Name string
	Sort func([]int)
}

// All lists the available algorithms in the order they are presented.
func All() []Algorithm {
	return []Algorithm{
		{Name: "Bubble Sort", Sort: Bubble[int]},
		{Name: "Insertion Sort", Sort: Insertion[int]},
		{Name: "Selection Sort", Sort: Selection[int]},
	}
}

// Bubble sorts s by repeatedly swapping adjacent elements which are out of
// order. After pass i the i largest elements are in their final position. The
// sort stops as soon as a pass performs no swap, making it O(n) for sorted
// input and O(n²) otherwise.
func Bubble[T constraints.Ordered](s []T) {
	n := len(s)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if s[j] > s[j+1] {
				s[j], s[j+1] = s[j+1], s[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// Insertion sorts s by growing a sorted prefix one element at a time. Each
// new element is shifted left past all larger ones. O(n) for sorted input,
// O(n²) otherwise.
func Insertion[T constraints.Ordered](s []T) {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 && s[j] > key {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
}

// Selection sorts s by moving the minimum of the unsorted suffix to its front.
// Always O(n²) comparisons, at most n-1 swaps.
func Selection[T constraints.Ordered](s []T) {
	n := len(s)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if s[j] < s[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			s[i], s[minIdx] = s[minIdx], s[i]
		}
	}
}
