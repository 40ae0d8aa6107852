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

import (
	"errors"
	"fmt"
	"iter"
	"unsafe"

	"github.com/0xsoniclabs/primer/common"
)

// Chain is the owning handle of a singly-linked chain of nodes. It is the only
// party allowed to release the chain's nodes. Chains must not be copied; pass
// them by pointer.
type Chain struct {
	_      noCopy
	head   *Node
	length int
	alloc  Allocator
}

// Construct builds a chain holding the given values in order. One node per
// value is obtained from the allocator and linked to its predecessor. At least
// one value is required.
//
// If an allocation fails, all nodes obtained so far are released again and an
// error wrapping ErrOutOfMemory is returned. No partial chain is produced.
func Construct(alloc Allocator, values ...int) (*Chain, error) {
	if len(values) == 0 {
		return nil, ErrEmptyChain
	}
	nodes := make([]*Node, 0, len(values))
	for i, value := range values {
		node, err := alloc.Allocate(value)
		if err == nil && node == nil {
			err = errors.New("allocator returned no node")
		}
		if err != nil {
			if !errors.Is(err, ErrOutOfMemory) {
				err = fmt.Errorf("%w: %w", ErrOutOfMemory, err)
			}
			err = fmt.Errorf("failed to allocate node %d of %d: %w", i+1, len(values), err)
			return nil, errors.Join(err, releaseAll(alloc, nodes))
		}
		if i > 0 {
			nodes[i-1].link(node)
		}
		nodes = append(nodes, node)
	}
	return &Chain{head: nodes[0], length: len(nodes), alloc: alloc}, nil
}

// Traverse produces the values of the chain starting at head by following the
// successor links until the end of the chain. The sequence can be iterated
// any number of times; iterating does not modify the chain. Iteration stops
// at the first released node.
func Traverse(head *Node) iter.Seq[int] {
	return func(yield func(int) bool) {
		for cur := head; cur != nil && !cur.released; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// Head returns the first node of the chain, or nil if it has been released.
func (c *Chain) Head() *Node {
	return c.head
}

// Len returns the number of nodes owned by the chain.
func (c *Chain) Len() int {
	return c.length
}

// Values is a shortcut for Traverse(c.Head()).
func (c *Chain) Values() iter.Seq[int] {
	return Traverse(c.head)
}

// IsReleased reports whether Release has been called on this chain.
func (c *Chain) IsReleased() bool {
	return c.head == nil
}

// Release hands all nodes of the chain back to the allocator, starting with the
// tail. Each node is released exactly once and no node is accessed after its
// release. Afterwards the chain is empty. Releasing a chain twice returns
// ErrReleased.
//
// Node handles obtained through Head or Next before the release must not be
// used anymore.
func (c *Chain) Release() error {
	if c.head == nil {
		return ErrReleased
	}
	nodes := make([]*Node, 0, c.length)
	for cur := c.head; cur != nil; cur = cur.next {
		nodes = append(nodes, cur)
	}
	c.head = nil
	c.length = 0
	return releaseAll(c.alloc, nodes)
}

// GetMemoryFootprint provides the size of the chain in memory in bytes.
func (c *Chain) GetMemoryFootprint() *common.MemoryFootprint {
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*c))
	nodes := common.NewMemoryFootprint(uintptr(uint64(c.length) * NodeSize))
	nodes.SetNote(fmt.Sprintf("(items: %d)", c.length))
	mf.AddChild("nodes", nodes)
	return mf
}

// releaseAll releases the given nodes in reverse order. All nodes are
// attempted, even if some of them fail.
func releaseAll(alloc Allocator, nodes []*Node) error {
	var errs []error
	for i := len(nodes) - 1; i >= 0; i-- {
		if err := alloc.Release(nodes[i]); err != nil {
			errs = append(errs, fmt.Errorf("failed to release node %d: %w", i+1, err))
		}
	}
	return errors.Join(errs...)
}

// noCopy may be embedded into structs which must not be copied after first
// use. It is recognized by the copylocks check of go vet.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
