// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package diagnostics

import (
	"errors"
	"io"
	"net/http"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestAddPerformanceDiagnosticsAction(t *testing.T) {
	dir := t.TempDir()
	called := false
	action := func(ctx *cli.Context) error {
		// profile file created
		require.FileExists(t, path.Join(dir, "cpu.profile"))
		require.FileExists(t, path.Join(dir, "tracer.out"))

		// server started
		var statusCode int
		var counter int
		const loops = 10
		var lastHttpGetErr error
		wait := 100 * time.Millisecond
		for statusCode != http.StatusOK && counter < loops {
			resp, err := http.Get("http://localhost:16060/debug/pprof/")
			lastHttpGetErr = err
			if resp != nil {
				statusCode = resp.StatusCode
				_ = resp.Body.Close()
			}
			counter++
			time.Sleep(wait)
			wait *= 2
		}

		require.NoError(t, lastHttpGetErr)
		require.Equal(t, http.StatusOK, statusCode)

		called = true
		return nil
	}

	app := &cli.App{
		Action:    AddPerformanceDiagnosticsAction(action),
		Flags:     Flags(),
		Writer:    io.Discard,
		ErrWriter: io.Discard,
	}

	err := app.Run([]string{
		"cmd",
		"--diagnostic-port", "16060",
		"--cpuprofile", path.Join(dir, "cpu.profile"),
		"--tracefile", path.Join(dir, "tracer.out"),
		"--memprofile", path.Join(dir, "heap.profile"),
	})
	require.NoError(t, err)
	require.True(t, called, "action should be called")
	require.FileExists(t, path.Join(dir, "heap.profile"))
}

func TestAddPerformanceDiagnosticsAction_WithoutFlags_OnlyRunsAction(t *testing.T) {
	called := false
	app := &cli.App{
		Action: AddPerformanceDiagnosticsAction(func(*cli.Context) error {
			called = true
			return nil
		}),
		Flags: Flags(),
	}
	require.NoError(t, app.Run([]string{"cmd"}))
	require.True(t, called)
}

func TestAddPerformanceDiagnosticsAction_ActionErrorSkipsHeapProfile(t *testing.T) {
	dir := t.TempDir()
	issue := errors.New("action failed")
	app := &cli.App{
		Action: AddPerformanceDiagnosticsAction(func(*cli.Context) error {
			return issue
		}),
		Flags: Flags(),
	}
	err := app.Run([]string{"cmd", "--memprofile", path.Join(dir, "heap.profile")})
	require.ErrorIs(t, err, issue)
	require.NoFileExists(t, path.Join(dir, "heap.profile"))
}

func TestAddPerformanceDiagnosticsAction_InvalidProfileTarget_Fails(t *testing.T) {
	app := &cli.App{
		Action: AddPerformanceDiagnosticsAction(func(*cli.Context) error {
			return nil
		}),
		Flags: Flags(),
	}
	err := app.Run([]string{"cmd", "--cpuprofile", "/path/does/not/exist/cpu.profile"})
	require.Error(t, err)
}
