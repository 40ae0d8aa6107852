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

import "errors"

var (
	// ErrOutOfMemory is reported when an allocator can not provide another node.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrEmptyChain is reported when constructing a chain without any values.
	ErrEmptyChain = errors.New("a chain needs at least one value")
	// ErrReleased is reported when releasing a chain that was already released.
	ErrReleased = errors.New("chain already released")
	// ErrDoubleRelease is reported when a node is handed back twice.
	ErrDoubleRelease = errors.New("node already released")
	// ErrForeignNode is reported when a node is handed back to an allocator
	// that did not produce it.
	ErrForeignNode = errors.New("node not owned by this allocator")
)
