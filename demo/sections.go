// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package demo computes the sections of the console tour and renders them as
// text. Computing a section yields a Report holding plain values, which can be
// inspected in tests; rendering is done separately by the report's Render
// method.
package demo

import (
	"container/list"
	"fmt"
	"io"
	"slices"

	"github.com/0xsoniclabs/primer/basics"
	"github.com/0xsoniclabs/primer/chain"
	"github.com/0xsoniclabs/primer/complexity"
	"github.com/0xsoniclabs/primer/config"
	"github.com/0xsoniclabs/primer/queue"
	"github.com/0xsoniclabs/primer/search"
	"github.com/0xsoniclabs/primer/sorting"
	"github.com/0xsoniclabs/primer/stack"
)

// Report is the computed outcome of a tour section.
type Report interface {
	// Title is the section headline.
	Title() string
	// Render writes a human readable form of the report to w.
	Render(w io.Writer) error
}

// Sections computes all sections of the tour in presentation order.
func Sections(cfg config.Config, alloc chain.Allocator) ([]Report, error) {
	chainReport, err := Chain(alloc, cfg.Chain)
	if err != nil {
		return nil, err
	}
	return []Report{
		Arrays(),
		chainReport,
		Stacks(),
		Queues(),
		Sorting(cfg.Sort),
		Searching(cfg.Search),
		Complexity(),
	}, nil
}

// ArraysReport shows a fixed-size array next to a growing slice.
type ArraysReport struct {
	basics.Collections
}

// Arrays compares the array {1, 2, 3, 4, 5} with a slice grown by one element.
func Arrays() ArraysReport {
	return ArraysReport{basics.Arrays()}
}

// ChainReport captures the life of a singly-linked chain.
type ChainReport struct {
	Values    []int   // < values produced by traversing the chain
	Footprint uintptr // < memory held by the chain before its release
	Allocated int     // < nodes handed out by the allocator, if it keeps count
	Released  int     // < nodes handed back to the allocator, if it keeps count
	Counted   bool    // < whether Allocated and Released are known
	StdList   []int   // < content of a container/list after appending 4
}

// Chain constructs a chain from values, traverses it and releases it again.
func Chain(alloc chain.Allocator, values []int) (ChainReport, error) {
	c, err := chain.Construct(alloc, values...)
	if err != nil {
		return ChainReport{}, fmt.Errorf("failed to construct chain: %w", err)
	}
	report := ChainReport{
		Values:    slices.Collect(chain.Traverse(c.Head())),
		Footprint: c.GetMemoryFootprint().Total(),
	}
	if err := c.Release(); err != nil {
		return ChainReport{}, fmt.Errorf("failed to release chain: %w", err)
	}

	if counter, ok := alloc.(interface {
		Allocated() int
		Released() int
	}); ok {
		report.Counted = true
		report.Allocated = counter.Allocated()
		report.Released = counter.Released()
	}

	std := list.New()
	for _, v := range []int{1, 2, 3} {
		std.PushBack(v)
	}
	std.PushBack(4)
	for e := std.Front(); e != nil; e = e.Next() {
		report.StdList = append(report.StdList, e.Value.(int))
	}
	return report, nil
}

// StacksReport captures the top of a stack before and after a pop, for the
// Stack type and for a plain slice used as a stack.
type StacksReport struct {
	Top, TopAfterPop           int
	SliceTop, SliceTopAfterPop int
}

// Stacks pushes 1, 2 and 3 and pops once, both on a Stack and on a plain slice.
func Stacks() StacksReport {
	var report StacksReport

	var s stack.Stack[int]
	s.Push(1)
	s.Push(2)
	s.Push(3)
	report.Top, _ = s.Peek()
	s.Pop()
	report.TopAfterPop, _ = s.Peek()

	manual := []int{1, 2, 3}
	report.SliceTop = manual[len(manual)-1]
	manual = manual[:len(manual)-1]
	report.SliceTopAfterPop = manual[len(manual)-1]
	return report
}

// QueuesReport captures the front of a queue before and after a dequeue, for
// the Queue type and for a plain slice used as a queue, and the order in which
// a priority queue hands out tasks.
type QueuesReport struct {
	Front, FrontAfterDequeue           int
	SliceFront, SliceFrontAfterDequeue int
	Schedule                           []string
}

// Queues enqueues 1, 2 and 3 and dequeues once, both on a Queue and on a
// plain slice, and drains a priority queue of tasks.
func Queues() QueuesReport {
	var report QueuesReport

	var q queue.Queue[int]
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	report.Front, _ = q.Front()
	q.Dequeue()
	report.FrontAfterDequeue, _ = q.Front()

	manual := []int{1, 2, 3}
	report.SliceFront = manual[0]
	manual = manual[1:]
	report.SliceFrontAfterDequeue = manual[0]

	tasks := queue.NewPriority[string]()
	tasks.Push("write docs", 3)
	tasks.Push("fix bug", 1)
	tasks.Push("review", 2)
	for tasks.Len() > 0 {
		task, _ := tasks.Pop()
		report.Schedule = append(report.Schedule, task)
	}
	return report
}

// SortResult is the output of one sorting algorithm.
type SortResult struct {
	Algorithm string
	Sorted    []int
}

// SortingReport lists the input and the output of every sorting algorithm.
type SortingReport struct {
	Original []int
	Results  []SortResult
}

// Sorting sorts a copy of input with each available algorithm.
func Sorting(input []int) SortingReport {
	report := SortingReport{Original: slices.Clone(input)}
	for _, algorithm := range sorting.All() {
		s := slices.Clone(input)
		algorithm.Sort(s)
		report.Results = append(report.Results, SortResult{Algorithm: algorithm.Name, Sorted: s})
	}
	return report
}

// Outcome is the result of a search.
type Outcome struct {
	Index int
	Found bool
}

// SearchingReport lists the outcome of linear and binary search.
type SearchingReport struct {
	Target int
	Linear Outcome
	Binary Outcome
}

// Searching looks up the configured target with linear and binary search.
func Searching(cfg config.Search) SearchingReport {
	report := SearchingReport{Target: cfg.Target}
	report.Linear.Index, report.Linear.Found = search.Linear(cfg.Values, cfg.Target)
	report.Binary.Index, report.Binary.Found = search.Binary(cfg.Values, cfg.Target)
	return report
}

// PointersReport collects the observations of the pointer lesson.
type PointersReport struct {
	Pointer basics.PointerFacts
	Alias   basics.AliasFacts
	NilSafe bool
	Array   basics.ArrayFacts
}

// Pointers collects the outcome of the pointer lesson.
func Pointers() PointersReport {
	return PointersReport{
		Pointer: basics.Pointers(),
		Alias:   basics.Aliasing(),
		NilSafe: basics.NilPointerIsSafeToCheck(),
		Array:   basics.ArrayPointers(),
	}
}

// ComplexityReport lists common complexity classes.
type ComplexityReport struct {
	Classes []complexity.Class
}

// Complexity lists the catalogue of complexity classes.
func Complexity() ComplexityReport {
	return ComplexityReport{Classes: complexity.Classes()}
}
