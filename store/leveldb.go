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

package store

import (
	"github.com/cockroachdb/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

// levelDbStore keeps values in a LevelDB database.
type levelDbStore struct {
	db *leveldb.DB
}

// OpenLevelDB opens or creates a LevelDB database in directory path.
func OpenLevelDB(path string) (Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open leveldb %v", path)
	}
	return &levelDbStore{db: db}, nil
}

// NewMemory creates a store backed by an in-memory LevelDB.
func NewMemory() (Store, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open in-memory leveldb")
	}
	return &levelDbStore{db: db}, nil
}

func (s *levelDbStore) Get(key string) ([]byte, error) {
	value, err := s.db.Get([]byte(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read key %q", key)
	}
	return value, nil
}

func (s *levelDbStore) Put(key string, value []byte) error {
	if err := s.db.Put([]byte(key), value, nil); err != nil {
		return errors.Wrapf(err, "cannot write key %q", key)
	}
	return nil
}

func (s *levelDbStore) Delete(key string) error {
	if err := s.db.Delete([]byte(key), nil); err != nil {
		return errors.Wrapf(err, "cannot delete key %q", key)
	}
	return nil
}

func (s *levelDbStore) Close() error {
	return s.db.Close()
}
