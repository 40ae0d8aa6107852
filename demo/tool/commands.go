// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"github.com/0xsoniclabs/primer/chain"
	"github.com/0xsoniclabs/primer/common/diagnostics"
	"github.com/0xsoniclabs/primer/common/interrupt"
	"github.com/0xsoniclabs/primer/common/logger"
	"github.com/0xsoniclabs/primer/config"
	"github.com/0xsoniclabs/primer/demo"
	"github.com/urfave/cli/v2"
)

var (
	sizeFlag = cli.IntFlag{
		Name:  "size",
		Usage: "number of elements of each random input, overrides the config file",
	}
	roundsFlag = cli.IntFlag{
		Name:  "rounds",
		Usage: "number of random inputs sorted by each algorithm, overrides the config file",
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "seed of the random input generator, overrides the config file",
	}
)

var TourCmd = cli.Command{
	Action: diagnostics.AddPerformanceDiagnosticsAction(doTour),
	Name:   "tour",
	Usage:  "run all sections of the tour in order",
}

var ArraysCmd = sectionCommand("arrays", "show fixed-size arrays and growing slices",
	func(config.Config) (demo.Report, error) {
		return demo.Arrays(), nil
	})

var ListCmd = sectionCommand("list", "build, traverse and release a singly-linked chain",
	func(cfg config.Config) (demo.Report, error) {
		return demo.Chain(chain.NewHeapAllocator(), cfg.Chain)
	})

var StackCmd = sectionCommand("stack", "push and pop elements of a stack",
	func(config.Config) (demo.Report, error) {
		return demo.Stacks(), nil
	})

var QueueCmd = sectionCommand("queue", "enqueue and dequeue elements of FIFO and priority queues",
	func(config.Config) (demo.Report, error) {
		return demo.Queues(), nil
	})

var SortCmd = sectionCommand("sort", "sort the configured input with bubble, insertion and selection sort",
	func(cfg config.Config) (demo.Report, error) {
		return demo.Sorting(cfg.Sort), nil
	})

var SearchCmd = sectionCommand("search", "look up the configured target with linear and binary search",
	func(cfg config.Config) (demo.Report, error) {
		return demo.Searching(cfg.Search), nil
	})

var ComplexityCmd = sectionCommand("complexity", "list common time complexity classes",
	func(config.Config) (demo.Report, error) {
		return demo.Complexity(), nil
	})

var PointersCmd = sectionCommand("pointers", "show pointers, aliasing and pointer arithmetic on arrays",
	func(config.Config) (demo.Report, error) {
		return demo.Pointers(), nil
	})

var CompareCmd = cli.Command{
	Action: diagnostics.AddPerformanceDiagnosticsAction(doCompare),
	Name:   "compare",
	Usage:  "compare the running time of the sorting algorithms on random inputs",
	Flags: []cli.Flag{
		&sizeFlag,
		&roundsFlag,
		&seedFlag,
	},
}

func sectionCommand(name, usage string, compute func(config.Config) (demo.Report, error)) cli.Command {
	return cli.Command{
		Name:  name,
		Usage: usage,
		Action: diagnostics.AddPerformanceDiagnosticsAction(func(context *cli.Context) error {
			cfg, err := loadConfig(context)
			if err != nil {
				return err
			}
			report, err := compute(cfg)
			if err != nil {
				return err
			}
			return demo.Print(context.App.Writer, report)
		}),
	}
}

func loadConfig(context *cli.Context) (config.Config, error) {
	path := context.String(configFlag.Name)
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func doTour(context *cli.Context) error {
	cfg, err := loadConfig(context)
	if err != nil {
		return err
	}
	return demo.Tour(context.App.Writer, cfg, chain.NewHeapAllocator())
}

func doCompare(context *cli.Context) error {
	cfg, err := loadConfig(context)
	if err != nil {
		return err
	}
	if context.IsSet(sizeFlag.Name) {
		cfg.Compare.Size = context.Int(sizeFlag.Name)
	}
	if context.IsSet(roundsFlag.Name) {
		cfg.Compare.Rounds = context.Int(roundsFlag.Name)
	}
	if context.IsSet(seedFlag.Name) {
		cfg.Compare.Seed = context.Int64(seedFlag.Name)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := interrupt.CancelOnInterrupt(context.Context)
	report, err := demo.Compare(ctx, cfg.Compare, logger.NewLogTo(context.App.ErrWriter))
	if err != nil {
		return err
	}
	return demo.Print(context.App.Writer, report)
}
