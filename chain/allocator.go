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

//go:generate mockgen -source allocator.go -destination allocator_mocks.go -package chain

import (
	"fmt"
	"unsafe"

	"github.com/0xsoniclabs/primer/common"
	"github.com/pbnjay/memory"
)

// Allocator provides nodes for chains and takes them back once they are no
// longer needed. Every node obtained through Allocate must be passed to
// Release of the same allocator exactly once.
type Allocator interface {
	// Allocate creates a node holding the given value and no successor. If no
	// more nodes can be provided, an error wrapping ErrOutOfMemory is returned.
	Allocate(value int) (*Node, error)
	// Release hands a node back to the allocator. The node must not be used
	// afterwards.
	Release(node *Node) error
}

// NodeSize is the number of bytes accounted for each allocated node.
const NodeSize = uint64(unsafe.Sizeof(Node{}))

// HeapAllocator is an Allocator drawing nodes from the Go heap while keeping
// book of the number of allocated and released nodes. An optional budget
// limits the number of bytes occupied by live nodes.
//
// HeapAllocator is not thread-safe.
type HeapAllocator struct {
	budget    uint64 // < maximum number of bytes of live nodes, if limited
	limited   bool   // < whether the budget is enforced
	allocated int    // < number of nodes handed out so far
	released  int    // < number of nodes handed back so far
}

// NewHeapAllocator creates an allocator whose budget is the amount of free
// system memory at the time of its creation. If the free memory can not be
// determined, the allocator is unlimited.
func NewHeapAllocator() *HeapAllocator {
	free := memory.FreeMemory()
	return &HeapAllocator{budget: free, limited: free > 0}
}

// NewBoundedAllocator creates an allocator able to keep at most maxNodes nodes
// alive at any time. A non-positive limit makes every allocation fail.
func NewBoundedAllocator(maxNodes int) *HeapAllocator {
	if maxNodes < 0 {
		maxNodes = 0
	}
	return &HeapAllocator{budget: uint64(maxNodes) * NodeSize, limited: true}
}

func (a *HeapAllocator) Allocate(value int) (*Node, error) {
	required := uint64(a.Live()+1) * NodeSize
	if a.limited && required > a.budget {
		return nil, fmt.Errorf("%w: %d live nodes would need %d bytes, budget is %d bytes", ErrOutOfMemory, a.Live()+1, required, a.budget)
	}
	node := NewNode(value)
	node.owner = a
	a.allocated++
	return node, nil
}

func (a *HeapAllocator) Release(node *Node) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrForeignNode)
	}
	if node.owner != Allocator(a) {
		return ErrForeignNode
	}
	if node.released {
		return ErrDoubleRelease
	}
	node.markReleased()
	a.released++
	return nil
}

// Allocated returns the number of nodes handed out since creation.
func (a *HeapAllocator) Allocated() int {
	return a.allocated
}

// Released returns the number of nodes handed back since creation.
func (a *HeapAllocator) Released() int {
	return a.released
}

// Live returns the number of nodes currently handed out.
func (a *HeapAllocator) Live() int {
	return a.allocated - a.released
}

// GetMemoryFootprint provides the size of the allocator and its live nodes.
func (a *HeapAllocator) GetMemoryFootprint() *common.MemoryFootprint {
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*a))
	nodes := common.NewMemoryFootprint(uintptr(uint64(a.Live()) * NodeSize))
	nodes.SetNote(fmt.Sprintf("(live: %d)", a.Live()))
	mf.AddChild("nodes", nodes)
	return mf
}
