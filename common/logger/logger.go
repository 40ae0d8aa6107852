// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package logger prints operational messages and the progress of long
// running loops.
package logger

import (
	"io"
	"log"
	"os"
	"time"
)

// Log prints timestamped operational messages of long running commands.
type Log struct {
	log *log.Logger
}

// NewLog creates a Log writing to stderr.
func NewLog() *Log {
	return NewLogTo(os.Stderr)
}

// NewLogTo creates a Log writing to the given writer.
func NewLogTo(out io.Writer) *Log {
	return &Log{log: log.New(out, "", log.LstdFlags)}
}

// Printf prints a formatted message.
func (l *Log) Printf(format string, v ...any) {
	l.log.Printf(format, v...)
}

// NewProgressTracker creates a ProgressLogger printing a message every period
// steps. The format receives the number of steps done so far and the rate of
// steps per second since the previous message.
func (l *Log) NewProgressTracker(format string, period int) *ProgressLogger {
	if period < 1 {
		period = 1
	}
	return &ProgressLogger{
		log:    l,
		format: format,
		period: period,
		last:   time.Now(),
	}
}

// ProgressLogger reports the progress of a loop in regular intervals.
// It is not thread-safe.
type ProgressLogger struct {
	log     *Log
	format  string
	period  int
	counter int
	pending int
	last    time.Time
}

// Step records n steps of progress, printing a message whenever another
// period of steps has been completed.
func (p *ProgressLogger) Step(n int) {
	p.counter += n
	p.pending += n
	if p.pending < p.period {
		return
	}
	now := time.Now()
	rate := float64(p.pending) / now.Sub(p.last).Seconds()
	p.log.Printf(p.format, p.counter, rate)
	p.pending = 0
	p.last = now
}
