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

package config

import (
	"github.com/urfave/cli/v2"

	"github.com/0xsoniclabs/distviz/store"
)

// command line flags
var (
	StateDbFlag = cli.PathFlag{
		Name:    "state-db",
		Usage:   "path to the persisted application state; a connection string for postgres",
		EnvVars: []string{"DISTVIZ_STATE_DB"},
		Value:   "distviz-state",
	}
	StorageFlag = cli.StringFlag{
		Name:    "storage",
		Usage:   "storage backend of the application state (\"leveldb\", \"sqlite\", \"postgres\", \"memory\")",
		EnvVars: []string{"DISTVIZ_STORAGE"},
		Value:   store.LevelDbKind,
	}
	HostFlag = cli.StringFlag{
		Name:    "host",
		Usage:   "interface the visualizer listens on",
		EnvVars: []string{"DISTVIZ_HOST"},
		Value:   "localhost",
	}
	PortFlag = cli.IntFlag{
		Name:    "port",
		Usage:   "port the visualizer listens on",
		EnvVars: []string{"DISTVIZ_PORT"},
		Value:   8080,
	}
	HostedFlag = cli.BoolFlag{
		Name:    "hosted",
		Usage:   "serve as a hosted page without the Quit menu",
		EnvVars: []string{"DISTVIZ_HOSTED"},
	}
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output path of the rendered chart; .png, .svg and .pdf write an image, anything else html",
		Value:   "chart.html",
	}
	FamilyFlag = cli.StringFlag{
		Name:  "family",
		Usage: "distribution family (\"Uniform\", \"Gaussian\", \"Gamma\", \"LogNormal\"); defaults to the persisted one",
	}
	ParamFlag = cli.StringSliceFlag{
		Name:  "param",
		Usage: "distribution parameter as name=value, e.g. sigma=0.5",
	}
	XFlag = cli.Float64SliceFlag{
		Name:  "x",
		Usage: "point at which the distribution is evaluated",
	}
)

