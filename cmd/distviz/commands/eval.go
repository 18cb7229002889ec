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
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/0xsoniclabs/distviz/config"
	"github.com/0xsoniclabs/distviz/distribution"
	"github.com/0xsoniclabs/distviz/logger"
)

// EvalCommand prints the pdf and cdf at given points.
var EvalCommand = cli.Command{
	Action: evalAction,
	Name:   "eval",
	Usage:  "print the pdf and cdf of the active distribution at given points",
	Flags:  withFlags(&config.XFlag),
	Description: `
The eval command evaluates the persisted distribution, with --family and
--param overrides applied, at every point given by --x.`,
}

func evalAction(ctx *cli.Context) (err error) {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	if len(cfg.Xs) == 0 {
		return errors.Newf("no evaluation points; use --%v", config.XFlag.Name)
	}
	log := logger.NewLogger(cfg.LogLevel, "Eval")

	db, state, err := openState(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.CombineErrors(err, db.Close())
	}()

	v := state.Variant()
	// go-pretty wraps titles to the table width
	if _, err := fmt.Fprintln(ctx.App.Writer, title(v)); err != nil {
		return errors.Wrap(err, "cannot write output")
	}
	t := table.NewWriter()
	t.SetOutputMirror(ctx.App.Writer)
	t.AppendHeader(table.Row{"x", "pdf", "cdf"})
	for _, x := range cfg.Xs {
		t.AppendRow(table.Row{x, v.PDF(x), v.CDF(x)})
	}
	t.Render()
	return nil
}

// title describes a variant and its parameters, e.g. "Gamma(k=2, theta=1)".
func title(v distribution.Variant) string {
	res := v.Name() + "("
	for i, p := range v.Params() {
		if i > 0 {
			res += ", "
		}
		res += fmt.Sprintf("%v=%v", p.Name, p.Value)
	}
	return res + ")"
}
