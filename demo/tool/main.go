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
	"fmt"
	"os"

	"github.com/0xsoniclabs/primer/common/diagnostics"
	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./demo/tool <command> <flags>

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "YAML file providing the inputs of the tour, built-in inputs are used if empty",
		Value: "",
	}
)

var commands = []*cli.Command{
	&TourCmd,
	&ArraysCmd,
	&ListCmd,
	&StackCmd,
	&QueueCmd,
	&SortCmd,
	&SearchCmd,
	&ComplexityCmd,
	&PointersCmd,
	&CompareCmd,
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "primer",
		Usage:     "a guided tour through introductory data structures and algorithms",
		Copyright: "(c) 2025 Sonic Operations Ltd",
		Flags:     append([]cli.Flag{&configFlag}, diagnostics.Flags()...),
		Action:    TourCmd.Action,
		Commands:  commands,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
