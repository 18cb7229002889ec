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

package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

const defaultLogFormat = "%{color}%{time:15:04:05.000} %{module:.8s} %{level:.4s}%{color:reset}: %{message}"

// LogLevelFlag defines the verbosity of the application logger.
var LogLevelFlag = cli.StringFlag{
	Name:    "log-level",
	Aliases: []string{"l"},
	Usage:   "Level of the logging of the app action (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\"; default: INFO)",
	Value:   "info",
}

// NewLogger creates a new logger for the given module. An unknown level
// falls back to INFO.
func NewLogger(level string, module string) *logging.Logger {
	return newLogger(os.Stderr, level, module)
}

func newLogger(w io.Writer, level string, module string) *logging.Logger {
	log := logging.MustGetLogger(module)
	format := logging.MustStringFormatter(defaultLogFormat)
	backend := logging.NewLogBackend(w, "", 0)
	formatter := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatter)

	logLevel, err := logging.LogLevel(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot parse log level %q; %v; using INFO\n", level, err)
		logLevel = logging.INFO
	}
	leveled.SetLevel(logLevel, module)
	log.SetBackend(leveled)
	return log
}

// ParseTime splits a duration into hours, minutes and seconds.
func ParseTime(elapsed time.Duration) (uint32, uint32, uint32) {
	var (
		hours, minutes, seconds uint32
	)
	seconds = uint32(elapsed.Round(time.Second).Seconds())
	if seconds >= 60 {
		minutes = seconds / 60
		seconds = seconds % 60
		if minutes >= 60 {
			hours = minutes / 60
			minutes = minutes % 60
		}
	}
	return hours, minutes, seconds
}
