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

// Package store provides key/value backends for persisting the
// application state between runs.
package store

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrNotFound is returned by Get for keys without a value.
var ErrNotFound = errors.New("store: key not found")

// Names of the supported backends.
const (
	LevelDbKind  = "leveldb"
	SqliteKind   = "sqlite"
	PostgresKind = "postgres"
	MemoryKind   = "memory"
)

// Store is a key/value storage for serialized application state.
//
//go:generate mockgen -source store.go -destination store_mock.go -package store
type Store interface {
	// Get returns the value stored under key or ErrNotFound.
	Get(key string) ([]byte, error)
	// Put stores value under key, replacing a previous value.
	Put(key string, value []byte) error
	// Delete removes key; deleting a missing key is not an error.
	Delete(key string) error
	// Close releases the underlying resources.
	Close() error
}

// Open opens a store of the given kind at path. For the postgres kind
// the path is a connection string; the memory kind ignores it.
func Open(kind string, path string) (Store, error) {
	switch strings.ToLower(kind) {
	case LevelDbKind:
		return OpenLevelDB(path)
	case SqliteKind:
		return OpenSQLite(path)
	case PostgresKind:
		return OpenPostgres(path)
	case MemoryKind:
		return NewMemory()
	default:
		return nil, errors.Newf("unknown storage kind %q", kind)
	}
}

// Kinds returns the names of the supported backends.
func Kinds() []string {
	return []string{LevelDbKind, SqliteKind, PostgresKind, MemoryKind}
}
