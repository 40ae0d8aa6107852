// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package diagnostics adds profiling and tracing flags to command line tools.
package diagnostics

import (
	"fmt"
	"io"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/urfave/cli/v2"
)

var (
	DiagnosticsFlag = cli.IntFlag{
		Name:  "diagnostic-port",
		Usage: "enable hosting of a realtime diagnostic server by providing a port",
		Value: 0,
	}
	CpuProfileFlag = cli.StringFlag{
		Name:  "cpuprofile",
		Usage: "sets the target file for storing CPU profiles to, disabled if empty",
		Value: "",
	}
	TraceFlag = cli.StringFlag{
		Name:  "tracefile",
		Usage: "sets the target file for traces to, disabled if empty",
		Value: "",
	}
	MemProfileFlag = cli.StringFlag{
		Name:  "memprofile",
		Usage: "sets the target file for a heap profile taken after the command, disabled if empty",
		Value: "",
	}
)

// Flags lists all flags consumed by AddPerformanceDiagnosticsAction.
func Flags() []cli.Flag {
	return []cli.Flag{&DiagnosticsFlag, &CpuProfileFlag, &TraceFlag, &MemProfileFlag}
}

// AddPerformanceDiagnosticsAction wraps an action function to add performance
// diagnostics controlled by the flags listed in Flags:
//   - a diagnostic pprof server on the port given by DiagnosticsFlag,
//   - CPU profiling into the file given by CpuProfileFlag,
//   - execution tracing into the file given by TraceFlag,
//   - a heap profile written after the action into MemProfileFlag's file.
func AddPerformanceDiagnosticsAction(action cli.ActionFunc) cli.ActionFunc {
	return func(context *cli.Context) error {
		startDiagnosticServer(context.App.ErrWriter, context.Int(DiagnosticsFlag.Name))

		if name := strings.TrimSpace(context.String(CpuProfileFlag.Name)); name != "" {
			if err := startCpuProfiler(name); err != nil {
				return err
			}
			defer pprof.StopCPUProfile()
		}

		if name := strings.TrimSpace(context.String(TraceFlag.Name)); name != "" {
			if err := startTracer(name); err != nil {
				return err
			}
			defer trace.Stop()
		}

		if err := action(context); err != nil {
			return err
		}

		if name := strings.TrimSpace(context.String(MemProfileFlag.Name)); name != "" {
			return writeHeapProfile(name)
		}
		return nil
	}
}

func startDiagnosticServer(out io.Writer, port int) {
	if port <= 0 || port >= (1<<16) {
		return
	}
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, "Starting diagnostic server at port http://localhost:%d\n", port)
	fmt.Fprintf(out, "(see https://pkg.go.dev/net/http/pprof#hdr-Usage_examples for usage examples)\n")
	go func() {
		addr := fmt.Sprintf("localhost:%d", port)
		log.Println(http.ListenAndServe(addr, nil))
	}()
	runtime.SetBlockProfileRate(1)
	runtime.SetMutexProfileFraction(1)
}

func startCpuProfiler(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("could not start CPU profile: %w", err)
	}
	return nil
}

func startTracer(filename string) error {
	traceFile, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	if err := trace.Start(traceFile); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	return nil
}

func writeHeapProfile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create heap profile: %w", err)
	}
	defer f.Close()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("could not write heap profile: %w", err)
	}
	return nil
}
