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
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"
)

func TestGetFlagValue(t *testing.T) {
	// app for testing
	app := cli.NewApp()
	app.Commands = []*cli.Command{
		{
			Name: "testcmd",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name: "intflag",
				},
				&cli.StringFlag{
					Name: "stringflag",
				},
				&cli.PathFlag{
					Name: "pathflag",
				},
				&cli.BoolFlag{
					Name: "boolflag",
				},
				&cli.StringSliceFlag{
					Name: "stringsliceflag",
				},
				&cli.Float64SliceFlag{
					Name: "float64sliceflag",
				},
			},
		},
	}

	newContext := func(set *flag.FlagSet) *cli.Context {
		ctx := cli.NewContext(app, set, nil)
		ctx.Command = app.Commands[0]
		return ctx
	}

	testCases := []struct {
		name          string
		setupFlags    func() *cli.Context
		flagToTest    interface{}
		expectedValue interface{}
	}{
		{
			name: "IntFlag value",
			setupFlags: func() *cli.Context {
				set := flag.NewFlagSet("test", 0)
				set.Int("intflag", 42, "")
				return newContext(set)
			},
			flagToTest:    cli.IntFlag{Name: "intflag"},
			expectedValue: 42,
		},
		{
			name: "StringFlag value",
			setupFlags: func() *cli.Context {
				set := flag.NewFlagSet("test", 0)
				set.String("stringflag", "test-string", "")
				return newContext(set)
			},
			flagToTest:    cli.StringFlag{Name: "stringflag"},
			expectedValue: "test-string",
		},
		{
			name: "PathFlag value",
			setupFlags: func() *cli.Context {
				set := flag.NewFlagSet("test", 0)
				set.String("pathflag", "/test/path", "")
				return newContext(set)
			},
			flagToTest:    cli.PathFlag{Name: "pathflag"},
			expectedValue: "/test/path",
		},
		{
			name: "BoolFlag value",
			setupFlags: func() *cli.Context {
				set := flag.NewFlagSet("test", 0)
				set.Bool("boolflag", true, "")
				return newContext(set)
			},
			flagToTest:    cli.BoolFlag{Name: "boolflag"},
			expectedValue: true,
		},
		{
			name: "StringSliceFlag value",
			setupFlags: func() *cli.Context {
				set := flag.NewFlagSet("test", 0)
				set.Var(cli.NewStringSlice("mu=1", "sigma=2"), "stringsliceflag", "")
				return newContext(set)
			},
			flagToTest:    cli.StringSliceFlag{Name: "stringsliceflag"},
			expectedValue: []string{"mu=1", "sigma=2"},
		},
		{
			name: "Float64SliceFlag value",
			setupFlags: func() *cli.Context {
				set := flag.NewFlagSet("test", 0)
				set.Var(cli.NewFloat64Slice(0, 2.5), "float64sliceflag", "")
				return newContext(set)
			},
			flagToTest:    cli.Float64SliceFlag{Name: "float64sliceflag"},
			expectedValue: []float64{0, 2.5},
		},
		{
			name: "undefined flag falls back to default",
			setupFlags: func() *cli.Context {
				return newContext(flag.NewFlagSet("test", 0))
			},
			flagToTest:    cli.IntFlag{Name: "port", Value: 8080},
			expectedValue: 8080,
		},
		{
			name: "undefined slice flag falls back to empty",
			setupFlags: func() *cli.Context {
				return newContext(flag.NewFlagSet("test", 0))
			},
			flagToTest:    cli.Float64SliceFlag{Name: "x"},
			expectedValue: []float64{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value := getFlagValue(tc.setupFlags(), tc.flagToTest)
			assert.Equal(t, tc.expectedValue, value)
		})
	}
}
