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
	"os"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/0xsoniclabs/distviz/config"
	"github.com/0xsoniclabs/distviz/logger"
	"github.com/0xsoniclabs/distviz/render"
)

// RenderCommand writes the chart of the active distribution to a file.
var RenderCommand = cli.Command{
	Action: renderAction,
	Name:   "render",
	Usage:  "write the pdf and cdf chart as an html page or an image",
	Flags:  withFlags(&config.OutputFlag),
	Description: `
The render command plots the persisted distribution, with --family and
--param overrides applied, and writes the chart to --output. Paths
ending in .png, .svg or .pdf get a static image, any other path an
interactive html page.`,
}

func renderAction(ctx *cli.Context) (err error) {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Render")

	db, state, err := openState(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.CombineErrors(err, db.Close())
	}()

	plot := render.Frame(state.Variant(), render.DefaultDomain())
	file, err := os.Create(cfg.Output)
	if err != nil {
		return errors.Wrapf(err, "cannot create %v", cfg.Output)
	}
	defer func() {
		err = errors.CombineErrors(err, file.Close())
	}()
	if format, ok := render.ImageFormat(cfg.Output); ok {
		err = render.WriteImage(file, plot, format)
	} else {
		err = render.WriteChart(file, plot)
	}
	if err != nil {
		return err
	}
	log.Noticef("Chart of %v written to %v", plot.Title, cfg.Output)
	return nil
}
