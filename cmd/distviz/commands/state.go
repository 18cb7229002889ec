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

// Package commands implements the distviz command line actions.
package commands

import (
	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"

	"github.com/0xsoniclabs/distviz/app"
	"github.com/0xsoniclabs/distviz/config"
	"github.com/0xsoniclabs/distviz/distribution"
	"github.com/0xsoniclabs/distviz/logger"
	"github.com/0xsoniclabs/distviz/store"
)

// stateFlags are the flags of every command reading the persisted state.
var stateFlags = []cli.Flag{
	&config.StateDbFlag,
	&config.StorageFlag,
	&config.FamilyFlag,
	&config.ParamFlag,
	&logger.LogLevelFlag,
}

// withFlags appends command specific flags to the state flags.
func withFlags(flags ...cli.Flag) []cli.Flag {
	return append(append([]cli.Flag{}, stateFlags...), flags...)
}

// openState opens the configured store and loads the persisted state
// with the command line overrides applied. The caller closes the store.
func openState(cfg *config.Config, log *logging.Logger) (store.Store, *app.State, error) {
	db, err := store.Open(cfg.Storage, cfg.StateDb)
	if err != nil {
		return nil, nil, err
	}
	state := app.NewWith(cfg.Variant(app.Load(db, log).Variant()))
	log.Debugf("Active distribution: %v %v", state.Variant().Name(), distribution.Values(state.Variant()))
	return db, state, nil
}
