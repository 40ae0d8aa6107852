// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package chain implements a singly-linked chain of integer nodes with an
// explicit allocate / release lifecycle.
//
// A chain is built from values using Construct, which draws one node per value
// from an Allocator and links them in order. The returned Chain is the unique
// owner of all its nodes. Traverse produces the payloads lazily, following the
// successor links from the head. Release hands every node back to the
// allocator exactly once, starting at the tail, and empties the handle.
//
// The lifecycle is strictly sequential: construction, any number of
// traversals, and a single release. Chains must not be shared between
// goroutines while they are in use.
package chain
