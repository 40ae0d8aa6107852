// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package interrupt connects long running loops to the SIGINT signal, so that
// they can be stopped gracefully from the console.
package interrupt

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

// ErrCanceled is reported by operations stopped through an interrupt.
var ErrCanceled = errors.New("interrupted")

// CancelOnInterrupt returns a context derived from ctx that is cancelled when
// the process receives SIGINT or SIGTERM, or when ctx is done. A nil ctx is
// treated as context.Background().
func CancelOnInterrupt(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx
}

// IsCancelled reports without blocking whether ctx has been cancelled.
func IsCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
