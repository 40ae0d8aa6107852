// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package queue provides a first-in first-out queue on top of a singly-linked
// list and a priority queue handing out the element of lowest priority first.
package queue

type element[T any] struct {
	value T
	next  *element[T]
}

// Queue is a first-in first-out container. Elements are kept in a singly
// linked list with a tail pointer, so both ends are reachable in O(1). The zero
// value is an empty queue ready to use.
type Queue[T any] struct {
	head *element[T]
	tail *element[T]
	size int
}

// Enqueue adds v at the back of the queue.
func (q *Queue[T]) Enqueue(v T) {
	e := &element[T]{value: v}
	if q.tail == nil {
		q.head = e
	} else {
		q.tail.next = e
	}
	q.tail = e
	q.size++
}

// Dequeue removes and returns the front element. If the queue is empty, ok is
// false.
func (q *Queue[T]) Dequeue() (v T, ok bool) {
	if q.head == nil {
		return v, false
	}
	e := q.head
	q.head = e.next
	if q.head == nil {
		q.tail = nil
	}
	e.next = nil
	q.size--
	return e.value, true
}

// Front returns the front element without removing it.
func (q *Queue[T]) Front() (v T, ok bool) {
	if q.head == nil {
		return v, false
	}
	return q.head.value, true
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	return q.size
}
