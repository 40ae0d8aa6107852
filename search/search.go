// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package search locates values in slices. Absence of a value is reported
// through a boolean rather than a sentinel index.
package search

import "golang.org/x/exp/constraints"

// Linear scans s from start to end and returns the index of the first element
// equal to target. If there is none, ok is false. O(n).
func Linear[T comparable](s []T, target T) (index int, ok bool) {
	for i, v := range s {
		if v == target {
			return i, true
		}
	}
	return 0, false
}

// Binary searches the ascending slice s by repeatedly halving the search
// interval around its midpoint. It returns the index of an element equal to
// target, which need not be the first one if target occurs multiple times. If
// s is not sorted, the result is unspecified. O(log n).
func Binary[T constraints.Ordered](s []T, target T) (index int, ok bool) {
	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case s[mid] == target:
			return mid, true
		case s[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return 0, false
}
