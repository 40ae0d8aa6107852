// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package chain

// Node is a single element of a singly-linked chain. It holds an integer
// payload and exclusively owns the link to its successor. A nil successor
// marks the end of the chain.
//
// Releasing a node does not release its successor. The owner of a chain is
// responsible for releasing each node exactly once.
type Node struct {
	value    int
	next     *Node
	owner    Allocator // < the allocator that produced this node, may be nil
	released bool
}

// NewNode creates a detached node holding the given value and no successor.
// It is intended for Allocator implementations.
func NewNode(value int) *Node {
	return &Node{value: value}
}

// Value returns the payload of the node.
func (n *Node) Value() int {
	return n.value
}

// Next returns the successor of the node or nil if it is the last one.
func (n *Node) Next() *Node {
	return n.next
}

// Released reports whether the node has been handed back to its allocator.
func (n *Node) Released() bool {
	return n.released
}

// link makes next the successor of n.
func (n *Node) link(next *Node) {
	n.next = next
}

// markReleased clears the node's content so that stale handles can not be
// used to reach the rest of the chain.
func (n *Node) markReleased() {
	n.value = 0
	n.next = nil
	n.released = true
}
