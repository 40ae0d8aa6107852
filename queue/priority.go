// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package queue

import (
	priorityqueue "gopkg.in/dnaeon/go-priorityqueue.v1"
)

// Priority is a queue handing out the element with the lowest priority value
// first. Elements of equal priority leave in unspecified order.
type Priority[T comparable] struct {
	pq *priorityqueue.PriorityQueue[T, int64]
}

// NewPriority creates an empty priority queue.
func NewPriority[T comparable]() *Priority[T] {
	return &Priority[T]{pq: priorityqueue.New[T, int64](priorityqueue.MinHeap)}
}

// Push adds v with the given priority.
func (p *Priority[T]) Push(v T, priority int64) {
	p.pq.Put(v, priority)
}

// Pop removes and returns the element with the lowest priority.
func (p *Priority[T]) Pop() (v T, ok bool) {
	if p.pq.Len() == 0 {
		return v, false
	}
	return p.pq.Get().Value, true
}

// Len returns the number of queued elements.
func (p *Priority[T]) Len() int {
	return p.pq.Len()
}
