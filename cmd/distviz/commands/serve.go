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
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/0xsoniclabs/distviz/config"
	"github.com/0xsoniclabs/distviz/logger"
	"github.com/0xsoniclabs/distviz/ui"
)

// ServeCommand opens the visualizer window.
var ServeCommand = cli.Command{
	Action: serveAction,
	Name:   "serve",
	Usage:  "open the interactive visualizer in the browser",
	Flags: withFlags(
		&config.HostFlag,
		&config.PortFlag,
		&config.HostedFlag,
	),
	Description: `
The serve command hosts the visualizer window as a local web page.
The last selected distribution is restored at startup and saved when
the window is closed through File > Quit or the process is interrupted.`,
}

// serveAction runs the UI until the user quits.
func serveAction(ctx *cli.Context) (err error) {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Serve")

	db, state, err := openState(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.CombineErrors(err, db.Close())
	}()

	runCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	loopCtx, stopLoop := context.WithCancel(context.Background())
	loop := ui.NewLoop(state)
	go loop.Run(loopCtx)

	server := ui.NewServer(loop, ui.Options{Addr: cfg.Addr(), Hosted: cfg.Hosted}, log)
	start := time.Now()
	serveErr := server.Serve(runCtx)

	stopLoop()
	<-loop.Stopped()
	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Noticef("Session lasted %vh %vm %vs", hours, minutes, seconds)

	if err := loop.State().Save(db); err != nil {
		return errors.CombineErrors(serveErr, err)
	}
	log.Debugf("State saved to %v", cfg.StateDb)
	return serveErr
}
