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
	"context"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/0xsoniclabs/primer/common/future"
	"github.com/0xsoniclabs/primer/common/interrupt"
	"github.com/0xsoniclabs/primer/common/logger"
	"github.com/0xsoniclabs/primer/common/result"
	"github.com/0xsoniclabs/primer/config"
	"github.com/0xsoniclabs/primer/sorting"
	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Timing summarises the durations one algorithm needed for sorting all inputs.
type Timing struct {
	Algorithm string
	Mean      time.Duration
	StdDev    time.Duration
	Min       time.Duration
	Max       time.Duration
}

// CompareReport lists the timings of all sorting algorithms on the same
// random inputs.
type CompareReport struct {
	Size    int
	Rounds  int
	Timings []Timing
}

// Compare sorts cfg.Rounds random inputs of cfg.Size elements with every
// available algorithm. Algorithms run concurrently, each on its own copies of
// the inputs. Every output is checked to be sorted. The comparison stops early
// with interrupt.ErrCanceled if ctx is cancelled.
func Compare(ctx context.Context, cfg config.Compare, log *logger.Log) (CompareReport, error) {
	r := rand.New(rand.NewSource(cfg.Seed))
	inputs := make([][]int, cfg.Rounds)
	for i := range inputs {
		inputs[i] = make([]int, cfg.Size)
		for j := range inputs[i] {
			inputs[i][j] = r.Intn(cfg.Size*10 + 1)
		}
	}

	log.Printf("Comparing sorting algorithms on %d inputs of %d elements ...", cfg.Rounds, cfg.Size)
	algorithms := sorting.All()
	timings := make([]future.Future[result.Result[Timing]], 0, len(algorithms))
	for _, algorithm := range algorithms {
		durations := future.Run(func() result.Result[[]float64] {
			return result.Of[[]float64](measure(ctx, algorithm, inputs, log))
		})
		timings = append(timings, future.Then(durations, func(res result.Result[[]float64]) result.Result[Timing] {
			seconds, err := res.Get()
			if err != nil {
				return result.Err[Timing](err)
			}
			return result.Ok(summarize(algorithm.Name, seconds))
		}))
	}

	summary, err := result.Collect(future.AwaitAll(timings))
	if err != nil {
		return CompareReport{}, err
	}
	log.Printf("Comparison done")
	return CompareReport{Size: cfg.Size, Rounds: cfg.Rounds, Timings: summary}, nil
}

// measure sorts a copy of each input with the given algorithm and returns the
// time spent on each of them in seconds.
func measure(ctx context.Context, algorithm sorting.Algorithm, inputs [][]int, log *logger.Log) ([]float64, error) {
	progress := log.NewProgressTracker(algorithm.Name+": sorted %d inputs, %.2f inputs/s", max(len(inputs)/4, 1))
	seconds := make([]float64, 0, len(inputs))
	for round, input := range inputs {
		if interrupt.IsCancelled(ctx) {
			return nil, interrupt.ErrCanceled
		}
		s := slices.Clone(input)
		start := time.Now()
		algorithm.Sort(s)
		seconds = append(seconds, time.Since(start).Seconds())
		if !slices.IsSorted(s) {
			return nil, fmt.Errorf("%s produced unsorted output in round %d", algorithm.Name, round)
		}
		progress.Step(1)
	}
	return seconds, nil
}

func summarize(algorithm string, seconds []float64) Timing {
	toDuration := func(s float64) time.Duration {
		return time.Duration(s * float64(time.Second))
	}
	if len(seconds) == 0 {
		return Timing{Algorithm: algorithm}
	}
	mean, stdDev := stat.MeanStdDev(seconds, nil)
	if len(seconds) < 2 {
		stdDev = 0
	}
	return Timing{
		Algorithm: algorithm,
		Mean:      toDuration(mean),
		StdDev:    toDuration(stdDev),
		Min:       toDuration(floats.Min(seconds)),
		Max:       toDuration(floats.Max(seconds)),
	}
}

func (CompareReport) Title() string { return "SORTING COMPARISON" }

func (r CompareReport) Render(w io.Writer) error {
	p := printer{w: w}
	p.printf("%d random inputs of %d elements per algorithm\n", r.Rounds, r.Size)
	table := tablewriter.NewWriter(&p)
	table.SetHeader([]string{"Algorithm", "Mean", "StdDev", "Min", "Max"})
	for _, t := range r.Timings {
		table.Append([]string{
			t.Algorithm,
			t.Mean.String(),
			t.StdDev.String(),
			t.Min.String(),
			t.Max.String(),
		})
	}
	table.Render()
	return p.err
}
