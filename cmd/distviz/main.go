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

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/0xsoniclabs/distviz/cmd/distviz/commands"
	"github.com/0xsoniclabs/distviz/config"
)

var distvizApp = &cli.App{
	Action:    commands.ServeCommand.Action,
	Name:      "Distribution visualizer",
	HelpName:  "distviz",
	Usage:     "plot the probability density and cumulative distribution of parametrized distributions",
	Copyright: "(c) 2025 Sonic Labs",
	Flags:     commands.ServeCommand.Flags,
	Commands: []*cli.Command{
		&commands.ServeCommand,
		&commands.RenderCommand,
		&commands.EvalCommand,
		&commands.ResetCommand,
	},
}

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := distvizApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
