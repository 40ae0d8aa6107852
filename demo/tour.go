// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package demo

import (
	"io"

	"github.com/0xsoniclabs/primer/chain"
	"github.com/0xsoniclabs/primer/config"
)

// Print writes a report headed by its title and followed by an empty line.
func Print(w io.Writer, r Report) error {
	p := printer{w: w}
	p.printf("=== %s ===\n", r.Title())
	if p.err != nil {
		return p.err
	}
	if err := r.Render(w); err != nil {
		return err
	}
	p.printf("\n")
	return p.err
}

// Tour computes all sections and prints them between a welcome banner and a
// closing note.
func Tour(w io.Writer, cfg config.Config, alloc chain.Allocator) error {
	reports, err := Sections(cfg, alloc)
	if err != nil {
		return err
	}

	p := printer{w: w}
	p.printf("WELCOME TO DSA CONCEPTS IN GO FOR BEGINNERS!\n")
	p.printf("This program demonstrates fundamental data structures and algorithms.\n\n")
	if p.err != nil {
		return p.err
	}
	for _, r := range reports {
		if err := Print(w, r); err != nil {
			return err
		}
	}
	p.printf("Congratulations! You've completed the DSA introduction.\n")
	p.printf("Next steps: Practice implementing these concepts, solve problems on platforms like LeetCode,\n")
	p.printf("and explore more advanced topics like trees, graphs, and dynamic programming.\n")
	return p.err
}
