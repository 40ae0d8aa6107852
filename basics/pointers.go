// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package basics computes the observations made in the pointer and array
// lessons. Every function returns plain values; printing is left to callers.
package basics

import "unsafe"

// PointerFacts captures reading and writing a variable through a pointer.
type PointerFacts struct {
	Initial      int     // < value of the variable before modification
	Address      uintptr // < address of the variable
	Dereferenced int     // < value read through the pointer
	Modified     int     // < variable after writing through the pointer
}

// Pointers stores 42 in a variable, reads it back through a pointer and then
// overwrites it with 100 through that same pointer.
func Pointers() PointerFacts {
	num := 42
	ptr := &num
	facts := PointerFacts{
		Initial:      num,
		Address:      uintptr(unsafe.Pointer(ptr)),
		Dereferenced: *ptr,
	}
	*ptr = 100
	facts.Modified = num
	return facts
}

// AliasFacts contrasts a pointer, which can be re-targeted, with an assignment
// through it, which only copies a value.
type AliasFacts struct {
	Original      int // < variable before writing through its alias
	AfterAlias    int // < variable after writing 200 through its alias
	PointsToA     int // < value seen through p while it points to a
	PointsToB     int // < value seen through p after re-targeting it to b
	AAfterCopy    int // < a after *alias = b, which copies b's value into a
	BAfterCopy    int // < b is unchanged by the copy
	AliasStillToA bool
}

// Aliasing demonstrates that writing through a pointer changes the variable it
// points to, that pointers can be redirected, and that assigning through a
// pointer copies the value instead of redirecting it.
func Aliasing() AliasFacts {
	var facts AliasFacts

	original := 50
	ref := &original
	facts.Original = original
	*ref = 200
	facts.AfterAlias = original

	a, b := 10, 20
	p := &a
	facts.PointsToA = *p
	p = &b
	facts.PointsToB = *p

	alias := &a
	*alias = b
	facts.AAfterCopy = a
	facts.BAfterCopy = b
	facts.AliasStillToA = alias == &a
	return facts
}

// NilPointerIsSafeToCheck reports whether a nil pointer can be detected before
// dereferencing it.
func NilPointerIsSafeToCheck() bool {
	var ptr *int
	return ptr == nil
}

// ArrayFacts relates elements of an array to a pointer walking over it.
type ArrayFacts struct {
	First       int // < arr[0]
	FirstViaPtr int // < *ptr with ptr = &arr[0]
	Second      int // < arr[1]
	SecondPtr   int // < value one element after ptr
	AfterStep   int // < value after advancing ptr by one element
}

// ArrayPointers walks over {1, 2, 3, 4, 5} with a pointer to its first element.
func ArrayPointers() ArrayFacts {
	arr := [5]int{1, 2, 3, 4, 5}
	ptr := &arr[0]
	step := unsafe.Sizeof(arr[0])
	facts := ArrayFacts{
		First:       arr[0],
		FirstViaPtr: *ptr,
		Second:      arr[1],
		SecondPtr:   *(*int)(unsafe.Add(unsafe.Pointer(ptr), step)),
	}
	ptr = (*int)(unsafe.Add(unsafe.Pointer(ptr), step))
	facts.AfterStep = *ptr
	return facts
}
