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

// Package config gathers the command line flags of distviz into a
// validated configuration.
package config

import (
	"math"
	"net"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/0xsoniclabs/distviz/distribution"
	"github.com/0xsoniclabs/distviz/store"
)

// Config is the configuration of a distviz command.
type Config struct {
	AppName     string
	CommandName string

	LogLevel string              // logging verbosity
	StateDb  string              // path of the persisted state
	Storage  string              // storage backend kind
	Host     string              // listen interface of the UI
	Port     int                 // listen port of the UI
	Hosted   bool                // hides the Quit menu
	Output   string              // output path of the render command
	Family   distribution.Family // family override; empty keeps the persisted one
	Params   map[string]float64  // parameter overrides
	Xs       []float64           // evaluation points of the eval command
}

// NewConfig creates and validates the configuration of the current
// command.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg, err := createConfigFromFlags(ctx)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr returns the listen address of the UI.
func (cfg *Config) Addr() string {
	return net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
}

func (cfg *Config) validate() error {
	kind := strings.ToLower(cfg.Storage)
	known := false
	for _, k := range store.Kinds() {
		if k == kind {
			known = true
		}
	}
	if !known {
		return errors.Newf("unknown storage %q; use one of %v", cfg.Storage, store.Kinds())
	}
	cfg.Storage = kind

	if kind != store.MemoryKind && cfg.StateDb == "" {
		return errors.New("state db path must not be empty")
	}
	if cfg.Port < 0 || cfg.Port > math.MaxUint16 {
		return errors.Newf("invalid port %d", cfg.Port)
	}
	for _, x := range cfg.Xs {
		if math.IsNaN(x) {
			return errors.New("evaluation point must be a number")
		}
	}
	return nil
}

// Variant applies the family and parameter overrides to the
// persisted variant v. Selecting a family resets it to its defaults
// before the parameters are applied.
func (cfg *Config) Variant(v distribution.Variant) distribution.Variant {
	if cfg.Family != "" {
		v = distribution.Default(cfg.Family)
	}
	if len(cfg.Params) == 0 {
		return v
	}
	values := distribution.Values(v)
	for name, value := range cfg.Params {
		values[name] = value
	}
	return distribution.FromParams(v.Family(), values)
}

// ParseParams parses name=value pairs. Values must be finite numbers.
func ParseParams(pairs []string) (map[string]float64, error) {
	params := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		name, raw, found := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, errors.Newf("invalid parameter %q; expected name=value", pair)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value of parameter %v", name)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, errors.Newf("parameter %v must be finite", name)
		}
		params[name] = value
	}
	return params, nil
}

// parseFamily parses an optional family name.
func parseFamily(name string) (distribution.Family, error) {
	if strings.TrimSpace(name) == "" {
		return "", nil
	}
	f, ok := distribution.ParseFamily(name)
	if !ok {
		return "", errors.Newf("unknown distribution family %q; use one of %v", name, distribution.Families())
	}
	return f, nil
}
