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
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/0xsoniclabs/distviz/app"
	"github.com/0xsoniclabs/distviz/config"
	"github.com/0xsoniclabs/distviz/logger"
	"github.com/0xsoniclabs/distviz/store"
)

// ResetCommand forgets the persisted state.
var ResetCommand = cli.Command{
	Action: resetAction,
	Name:   "reset",
	Usage:  "delete the persisted state; the next start uses the defaults",
	Flags: []cli.Flag{
		&config.StateDbFlag,
		&config.StorageFlag,
		&logger.LogLevelFlag,
	},
}

func resetAction(ctx *cli.Context) (err error) {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Reset")

	db, err := store.Open(cfg.Storage, cfg.StateDb)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.CombineErrors(err, db.Close())
	}()
	if err := db.Delete(app.Key); err != nil {
		return err
	}
	log.Noticef("Persisted state removed from %v", cfg.StateDb)
	return nil
}
