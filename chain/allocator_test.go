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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeapAllocator_Allocate_ProducesDetachedNodes(t *testing.T) {
	require := require.New(t)
	alloc := &HeapAllocator{}

	node, err := alloc.Allocate(12)
	require.NoError(err)
	require.Equal(12, node.Value())
	require.Nil(node.Next())
	require.False(node.Released())
	require.Equal(1, alloc.Allocated())
	require.Equal(1, alloc.Live())
}

func TestHeapAllocator_Release_UpdatesCounters(t *testing.T) {
	require := require.New(t)
	alloc := &HeapAllocator{}

	node, err := alloc.Allocate(1)
	require.NoError(err)
	require.NoError(alloc.Release(node))
	require.True(node.Released())
	require.Equal(1, alloc.Allocated())
	require.Equal(1, alloc.Released())
	require.Zero(alloc.Live())
}

func TestHeapAllocator_Release_DetectsDoubleRelease(t *testing.T) {
	alloc := &HeapAllocator{}
	node, err := alloc.Allocate(1)
	require.NoError(t, err)

	require.NoError(t, alloc.Release(node))
	require.ErrorIs(t, alloc.Release(node), ErrDoubleRelease)
	require.Equal(t, 1, alloc.Released())
}

func TestHeapAllocator_Release_RejectsForeignNodes(t *testing.T) {
	require := require.New(t)
	a := &HeapAllocator{}
	b := &HeapAllocator{}

	node, err := a.Allocate(1)
	require.NoError(err)

	require.ErrorIs(b.Release(node), ErrForeignNode)
	require.ErrorIs(b.Release(NewNode(2)), ErrForeignNode)
	require.ErrorIs(b.Release(nil), ErrForeignNode)
	require.False(node.Released())
	require.NoError(a.Release(node))
}

func TestBoundedAllocator_EnforcesNodeLimit(t *testing.T) {
	require := require.New(t)
	alloc := NewBoundedAllocator(2)

	first, err := alloc.Allocate(1)
	require.NoError(err)
	_, err = alloc.Allocate(2)
	require.NoError(err)
	_, err = alloc.Allocate(3)
	require.ErrorIs(err, ErrOutOfMemory)

	// Releasing a node frees room for another one.
	require.NoError(alloc.Release(first))
	_, err = alloc.Allocate(3)
	require.NoError(err)
}

func TestBoundedAllocator_NonPositiveLimit_RejectsAllAllocations(t *testing.T) {
	for _, limit := range []int{0, -1} {
		_, err := NewBoundedAllocator(limit).Allocate(1)
		require.ErrorIs(t, err, ErrOutOfMemory)
	}
}

func TestNewHeapAllocator_CanAllocateSmallChains(t *testing.T) {
	require := require.New(t)
	alloc := NewHeapAllocator()

	chain, err := Construct(alloc, 1, 2, 3)
	require.NoError(err)
	require.NoError(chain.Release())
	require.Zero(alloc.Live())
}

func TestHeapAllocator_GetMemoryFootprint_TracksLiveNodes(t *testing.T) {
	require := require.New(t)
	alloc := &HeapAllocator{}
	empty := alloc.GetMemoryFootprint().Total()

	_, err := alloc.Allocate(1)
	require.NoError(err)
	_, err = alloc.Allocate(2)
	require.NoError(err)

	fp := alloc.GetMemoryFootprint()
	require.Equal(uint64(empty)+2*NodeSize, uint64(fp.Total()))
	require.Contains(fp.String(), "(live: 2)")
}
