// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLog_Printf_WritesMessage(t *testing.T) {
	var buf bytes.Buffer
	NewLogTo(&buf).Printf("hello %s", "world")
	require.Contains(t, buf.String(), "hello world")
}

func TestProgressLogger_PrintsOncePerPeriod(t *testing.T) {
	var buf bytes.Buffer
	progress := NewLogTo(&buf).NewProgressTracker("done %d rounds, %.2f rounds/s", 3)

	progress.Step(1)
	progress.Step(1)
	require.Empty(t, buf.String())

	progress.Step(1)
	require.Contains(t, buf.String(), "done 3 rounds")

	progress.Step(5)
	require.Equal(t, 2, strings.Count(buf.String(), "\n"))
	require.Contains(t, buf.String(), "done 8 rounds")
}

func TestProgressLogger_NonPositivePeriod_PrintsEveryStep(t *testing.T) {
	var buf bytes.Buffer
	progress := NewLogTo(&buf).NewProgressTracker("%d %.0f", 0)
	progress.Step(1)
	progress.Step(1)
	require.Equal(t, 2, strings.Count(buf.String(), "\n"))
}
