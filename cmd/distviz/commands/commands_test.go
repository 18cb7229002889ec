// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package commands

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/0xsoniclabs/distviz/config"
	"github.com/0xsoniclabs/distviz/distribution"
	"github.com/0xsoniclabs/distviz/utils"
)

func newTestApp(out *bytes.Buffer) *cli.App {
	app := cli.NewApp()
	app.Commands = []*cli.Command{&ServeCommand, &RenderCommand, &EvalCommand, &ResetCommand}
	if out != nil {
		app.Writer = out
	}
	return app
}

// freePort returns a port that was free a moment ago.
func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return port
}

// waitForServer polls url until the server answers.
func waitForServer(t *testing.T, url string, errChan <-chan error) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}
	for i := 0; i < 40; i++ {
		select {
		case err := <-errChan:
			t.Fatalf("server stopped early: %v", err)
		default:
		}
		resp, err := client.Get(url)
		if err == nil {
			require.NoError(t, resp.Body.Close())
			return
		}
		time.Sleep(250 * time.Millisecond)
	}
	t.Fatal("server did not start")
}

func evalArgs(stateDb string) *utils.ArgsBuilder {
	return utils.NewArgs("test").
		Arg(EvalCommand.Name).
		Flag(config.StateDbFlag.Name, stateDb).
		Flag(config.XFlag.Name, 2.0)
}

func TestCmd_EvalPrintsTable(t *testing.T) {
	var out bytes.Buffer
	args := evalArgs(filepath.Join(t.TempDir(), "state")).
		Flag(config.FamilyFlag.Name, "Gamma").
		Flag(config.ParamFlag.Name, "k=2").
		Flag(config.ParamFlag.Name, "theta=1").
		Build()

	require.NoError(t, newTestApp(&out).Run(args))
	assert.True(t, strings.HasPrefix(out.String(), "Gamma(k=2, theta=1)\n"), out.String())
	assert.Contains(t, out.String(), "0.27067")
	assert.Contains(t, out.String(), "0.59399")
}

func TestCmd_EvalPrintsLongTitleOnOneLine(t *testing.T) {
	var out bytes.Buffer
	args := evalArgs(filepath.Join(t.TempDir(), "state")).
		Flag(config.FamilyFlag.Name, "Uniform").
		Flag(config.ParamFlag.Name, "lower_bound=-123.456").
		Flag(config.ParamFlag.Name, "upper_bound=789.012").
		Build()

	require.NoError(t, newTestApp(&out).Run(args))
	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "Uniform(lower_bound=-123.456, upper_bound=789.012)", lines[0])
}

func TestCmd_EvalGammaZeroShape(t *testing.T) {
	var out bytes.Buffer
	args := evalArgs(filepath.Join(t.TempDir(), "state")).
		Flag(config.StorageFlag.Name, "memory").
		Flag(config.FamilyFlag.Name, "Gamma").
		Flag(config.ParamFlag.Name, "k=0").
		Build()

	require.NoError(t, newTestApp(&out).Run(args))
	assert.Contains(t, out.String(), "Gamma(k=0, theta=1)")
	// x=2 lies beyond the point mass at 0
	assert.Regexp(t, `\|\s+2\s+\|\s+0\s+\|\s+1\s+\|`, out.String())
}

func TestCmd_EvalRequiresPoints(t *testing.T) {
	args := utils.NewArgs("test").
		Arg(EvalCommand.Name).
		Flag(config.StorageFlag.Name, "memory").
		Build()
	assert.ErrorContains(t, newTestApp(nil).Run(args), "no evaluation points")
}

func TestCmd_InvalidStorageFails(t *testing.T) {
	args := evalArgs(t.TempDir()).
		Flag(config.StorageFlag.Name, "redis").
		Build()
	assert.ErrorContains(t, newTestApp(nil).Run(args), "unknown storage")
}

func TestCmd_RenderWritesChart(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "chart.html")
	args := utils.NewArgs("test").
		Arg(RenderCommand.Name).
		Flag(config.StorageFlag.Name, "sqlite").
		Flag(config.StateDbFlag.Name, filepath.Join(dir, "state.sqlite")).
		Flag(config.FamilyFlag.Name, "LogNormal").
		Flag(config.OutputFlag.Name, output).
		Build()

	require.NoError(t, newTestApp(nil).Run(args))
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "LogNormal")
	assert.Contains(t, string(data), `"pdf"`)
}

func TestCmd_RenderWritesImage(t *testing.T) {
	output := filepath.Join(t.TempDir(), "chart.png")
	args := utils.NewArgs("test").
		Arg(RenderCommand.Name).
		Flag(config.StorageFlag.Name, "memory").
		Flag(config.FamilyFlag.Name, "Gamma").
		Flag(config.ParamFlag.Name, "k=0.5").
		Flag(config.OutputFlag.Name, output).
		Build()

	require.NoError(t, newTestApp(nil).Run(args))
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestCmd_RenderFailsOnBadOutput(t *testing.T) {
	dir := t.TempDir()
	args := utils.NewArgs("test").
		Arg(RenderCommand.Name).
		Flag(config.StorageFlag.Name, "memory").
		Flag(config.OutputFlag.Name, filepath.Join(dir, "missing", "chart.html")).
		Build()
	assert.ErrorContains(t, newTestApp(nil).Run(args), "cannot create")
}

func TestCmd_ServePersistsStateOnQuit(t *testing.T) {
	stateDb := filepath.Join(t.TempDir(), "state")
	port := freePort(t)
	args := utils.NewArgs("test").
		Arg(ServeCommand.Name).
		Flag(config.StateDbFlag.Name, stateDb).
		Flag(config.HostFlag.Name, "127.0.0.1").
		Flag(config.PortFlag.Name, port).
		Flag(config.FamilyFlag.Name, "Gaussian").
		Flag(config.ParamFlag.Name, "sigma=2").
		Build()

	errChan := make(chan error, 1)
	go func() {
		errChan <- newTestApp(nil).Run(args)
	}()
	serverURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	waitForServer(t, serverURL, errChan)

	resp, err := http.Post(serverURL+"/quit", "text/plain", nil)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	select {
	case err := <-errChan:
		require.NoError(t, err)
	case <-time.After(30 * time.Second):
		t.Fatal("serve did not stop after quit")
	}

	// the next start restores the saved distribution
	var out bytes.Buffer
	require.NoError(t, newTestApp(&out).Run(evalArgs(stateDb).Build()))
	assert.Contains(t, out.String(), "Gaussian(mu=0, sigma=2)")

	// reset forgets it
	resetArgs := utils.NewArgs("test").
		Arg(ResetCommand.Name).
		Flag(config.StateDbFlag.Name, stateDb).
		Build()
	require.NoError(t, newTestApp(nil).Run(resetArgs))
	out.Reset()
	require.NoError(t, newTestApp(&out).Run(evalArgs(stateDb).Build()))
	assert.Contains(t, out.String(), "Uniform(lower_bound=-1, upper_bound=1)")
}

func TestCmd_HostedServeStopsOnCancel(t *testing.T) {
	port := freePort(t)
	args := utils.NewArgs("test").
		Arg(ServeCommand.Name).
		Flag(config.StorageFlag.Name, "memory").
		Flag(config.HostFlag.Name, "127.0.0.1").
		Flag(config.PortFlag.Name, port).
		Flag(config.HostedFlag.Name, true).
		Build()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errChan := make(chan error, 1)
	go func() {
		errChan <- newTestApp(nil).RunContext(ctx, args)
	}()
	serverURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	waitForServer(t, serverURL, errChan)

	resp, err := http.Post(serverURL+"/quit", "text/plain", nil)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	cancel()
	select {
	case err := <-errChan:
		require.NoError(t, err)
	case <-time.After(30 * time.Second):
		t.Fatal("serve did not stop after cancel")
	}
}

func TestCmd_Title(t *testing.T) {
	assert.Equal(t, "Uniform(lower_bound=-3, upper_bound=0.5)",
		title(distribution.New(distribution.UniformID, -3, 0.5)))
}
