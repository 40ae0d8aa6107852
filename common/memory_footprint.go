// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package common contains utilities shared by the data structures of this
// module.
package common

import (
	"fmt"
	"sort"
	"strings"
)

// MemoryFootprint describes the memory consumption of a data structure. It
// forms a tree, where each node reports its own size and the footprints of
// its named children.
type MemoryFootprint struct {
	value    uintptr
	children map[string]*MemoryFootprint
	note     string
}

// NewMemoryFootprint creates a footprint for a structure occupying the given
// number of bytes itself, excluding any children.
func NewMemoryFootprint(value uintptr) *MemoryFootprint {
	return &MemoryFootprint{
		value:    value,
		children: map[string]*MemoryFootprint{},
	}
}

// AddChild registers the footprint of a named component.
func (mf *MemoryFootprint) AddChild(name string, child *MemoryFootprint) {
	if child != nil {
		mf.children[name] = child
	}
}

// SetNote attaches a short free-text remark printed next to the size.
func (mf *MemoryFootprint) SetNote(note string) {
	mf.note = note
}

// Value is the size of the structure itself, without children.
func (mf *MemoryFootprint) Value() uintptr {
	return mf.value
}

// Total is the size of the structure including all its children.
func (mf *MemoryFootprint) Total() uintptr {
	total := mf.value
	for _, child := range mf.children {
		total += child.Total()
	}
	return total
}

func (mf *MemoryFootprint) String() string {
	var sb strings.Builder
	mf.toStringBuilder(&sb, ".")
	return sb.String()
}

func (mf *MemoryFootprint) toStringBuilder(sb *strings.Builder, path string) {
	names := make([]string, 0, len(mf.children))
	for name := range mf.children {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		mf.children[name].toStringBuilder(sb, path+"/"+name)
	}
	sb.WriteString(fmt.Sprintf("%d B\t%s", mf.Total(), path))
	if mf.note != "" {
		sb.WriteString(" " + mf.note)
	}
	sb.WriteString("\n")
}
