// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package basics

// Collections lists the content of a fixed-size array and of a slice after
// growing it by one element.
type Collections struct {
	Array []int
	Slice []int
}

// Arrays builds the array {1, 2, 3, 4, 5} and a slice with the same content
// to which 6 is appended.
func Arrays() Collections {
	arr := [5]int{1, 2, 3, 4, 5}
	slice := []int{1, 2, 3, 4, 5}
	slice = append(slice, 6)
	return Collections{Array: arr[:], Slice: slice}
}
