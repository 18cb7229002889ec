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

	"github.com/0xsoniclabs/distviz/logger"
)

// createConfigFromFlags returns Config instance with user specified values or the default ones
func createConfigFromFlags(ctx *cli.Context) (*Config, error) {
	cfg := &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,

		LogLevel: getFlagValue(ctx, logger.LogLevelFlag).(string),
		StateDb:  getFlagValue(ctx, StateDbFlag).(string),
		Storage:  getFlagValue(ctx, StorageFlag).(string),
		Host:     getFlagValue(ctx, HostFlag).(string),
		Port:     getFlagValue(ctx, PortFlag).(int),
		Hosted:   getFlagValue(ctx, HostedFlag).(bool),
		Output:   getFlagValue(ctx, OutputFlag).(string),
		Xs:       getFlagValue(ctx, XFlag).([]float64),
	}

	var err error
	if cfg.Family, err = parseFamily(getFlagValue(ctx, FamilyFlag).(string)); err != nil {
		return nil, err
	}
	if cfg.Params, err = ParseParams(getFlagValue(ctx, ParamFlag).([]string)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getFlagValue returns the value of a flag of the current command or
// the flag's default if the command does not define it.
func getFlagValue(ctx *cli.Context, flag interface{}) interface{} {
	cmdFlags := ctx.Command.Flags
	for _, cmdFlag := range cmdFlags {
		switch f := flag.(type) {
		case cli.IntFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int(f.Name)
			}

		case cli.StringFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.String(f.Name)
			}

		case cli.PathFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Path(f.Name)
			}

		case cli.BoolFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Bool(f.Name)
			}

		case cli.StringSliceFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.StringSlice(f.Name)
			}

		case cli.Float64SliceFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Float64Slice(f.Name)
			}
		}
	}

	// If flag not found, return the default value of the flag
	switch f := flag.(type) {
	case cli.IntFlag:
		return f.Value
	case cli.StringFlag:
		return f.Value
	case cli.PathFlag:
		return f.Value
	case cli.BoolFlag:
		return f.Value
	case cli.StringSliceFlag:
		if f.Value == nil {
			return []string{}
		}
		return f.Value.Value()
	case cli.Float64SliceFlag:
		if f.Value == nil {
			return []float64{}
		}
		return f.Value.Value()
	}

	return nil
}
