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
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// printer writes formatted lines and keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Write lets tables render through the printer, so their write errors are
// kept as well.
func (p *printer) Write(data []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	var n int
	n, p.err = p.w.Write(data)
	return n, p.err
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}

func describe(o Outcome) string {
	if o.Found {
		return fmt.Sprintf("Found at index %d", o.Index)
	}
	return "Not found"
}

func (ArraysReport) Title() string { return "ARRAYS" }

func (r ArraysReport) Render(w io.Writer) error {
	p := printer{w: w}
	p.printf("Array elements: %s\n", joinInts(r.Array))
	p.printf("Slice after appending 6: %s\n", joinInts(r.Slice))
	return p.err
}

func (ChainReport) Title() string { return "LINKED LISTS" }

func (r ChainReport) Render(w io.Writer) error {
	p := printer{w: w}
	p.printf("Linked list: %s\n", joinInts(r.Values))
	p.printf("Memory held by the chain: %d bytes\n", r.Footprint)
	if r.Counted {
		p.printf("Nodes allocated: %d, released: %d\n", r.Allocated, r.Released)
	}
	p.printf("container/list: %s\n", joinInts(r.StdList))
	return p.err
}

func (StacksReport) Title() string { return "STACKS" }

func (r StacksReport) Render(w io.Writer) error {
	p := printer{w: w}
	p.printf("Stack top: %d\n", r.Top)
	p.printf("After pop, top: %d\n", r.TopAfterPop)
	p.printf("Slice as stack, top: %d\n", r.SliceTop)
	p.printf("After pop, top: %d\n", r.SliceTopAfterPop)
	return p.err
}

func (QueuesReport) Title() string { return "QUEUES" }

func (r QueuesReport) Render(w io.Writer) error {
	p := printer{w: w}
	p.printf("Queue front: %d\n", r.Front)
	p.printf("After dequeue, front: %d\n", r.FrontAfterDequeue)
	p.printf("Slice as queue, front: %d\n", r.SliceFront)
	p.printf("After dequeue, front: %d\n", r.SliceFrontAfterDequeue)
	p.printf("Priority queue schedule: %s\n", strings.Join(r.Schedule, ", "))
	return p.err
}

func (SortingReport) Title() string { return "SORTING ALGORITHMS" }

func (r SortingReport) Render(w io.Writer) error {
	p := printer{w: w}
	p.printf("Original array: %s\n", joinInts(r.Original))
	for _, result := range r.Results {
		p.printf("%s: %s\n", result.Algorithm, joinInts(result.Sorted))
	}
	return p.err
}

func (SearchingReport) Title() string { return "SEARCHING ALGORITHMS" }

func (r SearchingReport) Render(w io.Writer) error {
	p := printer{w: w}
	p.printf("Linear Search for %d: %s\n", r.Target, describe(r.Linear))
	p.printf("Binary Search for %d: %s\n", r.Target, describe(r.Binary))
	return p.err
}

func (PointersReport) Title() string { return "POINTERS" }

func (r PointersReport) Render(w io.Writer) error {
	p := printer{w: w}
	p.printf("Value of num: %d\n", r.Pointer.Initial)
	p.printf("Address of num: %#x\n", r.Pointer.Address)
	p.printf("Value at address ptr points to: %d\n", r.Pointer.Dereferenced)
	p.printf("After *ptr = 100, num is now: %d\n", r.Pointer.Modified)

	p.printf("\n=== ALIASING ===\n")
	p.printf("Original: %d\n", r.Alias.Original)
	p.printf("After *ref = 200, original is: %d\n", r.Alias.AfterAlias)
	p.printf("Pointer points to a: %d\n", r.Alias.PointsToA)
	p.printf("Pointer now points to b: %d\n", r.Alias.PointsToB)
	p.printf("After *alias = b, a is: %d (copied value)\n", r.Alias.AAfterCopy)

	if r.NilSafe {
		p.printf("\nPointer is nil - safe to check before dereferencing\n")
	}

	p.printf("\n=== ARRAY POINTER RELATIONSHIP ===\n")
	p.printf("First element: %d or %d\n", r.Array.First, r.Array.FirstViaPtr)
	p.printf("Second element: %d or %d\n", r.Array.Second, r.Array.SecondPtr)
	p.printf("After advancing ptr, points to: %d\n", r.Array.AfterStep)
	return p.err
}

func (ComplexityReport) Title() string { return "TIME COMPLEXITY BASICS" }

func (r ComplexityReport) Render(w io.Writer) error {
	p := printer{w: w}
	table := tablewriter.NewWriter(&p)
	table.SetHeader([]string{"Notation", "Growth", "Example"})
	table.SetAutoWrapText(false)
	for _, c := range r.Classes {
		table.Append([]string{c.Notation, c.Name, c.Example})
	}
	table.Render()
	return p.err
}
