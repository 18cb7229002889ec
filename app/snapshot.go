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

package app

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/op/go-logging"
	"github.com/tidwall/gjson"

	"github.com/0xsoniclabs/distviz/distribution"
	"github.com/0xsoniclabs/distviz/store"
)

// Key is the storage key of the persisted state.
const Key = "app"

// SnapshotJSON is the persisted form of the state.
type SnapshotJSON struct {
	Distribution *VariantJSON `json:"distribution,omitempty"`
}

// VariantJSON is the persisted form of one variant.
type VariantJSON struct {
	Family string             `json:"family"`
	Name   string             `json:"name,omitempty"`
	Params map[string]float64 `json:"params,omitempty"`
}

// Snapshot returns the persisted form of s.
func (s *State) Snapshot() SnapshotJSON {
	v := s.variant
	return SnapshotJSON{
		Distribution: &VariantJSON{
			Family: v.Family().String(),
			Name:   v.Name(),
			Params: distribution.Values(v),
		},
	}
}

// Encode serializes the state.
func (s *State) Encode() ([]byte, error) {
	data, err := json.Marshal(s.Snapshot())
	if err != nil {
		return nil, errors.Wrap(err, "cannot encode state")
	}
	return data, nil
}

// Restore builds a state from a snapshot. Fields are merged with the
// defaults: an unknown family yields the default state, missing
// parameters take the family defaults and out-of-domain values are
// clamped.
func Restore(snap SnapshotJSON) *State {
	if snap.Distribution == nil {
		return New()
	}
	f, ok := distribution.ParseFamily(snap.Distribution.Family)
	if !ok {
		return New()
	}
	return NewWith(distribution.FromParams(f, snap.Distribution.Params))
}

// Decode parses serialized state field by field. Missing or mistyped
// fields take their defaults. It never fails; data that is not JSON
// yields the default state and a non-nil error describing why.
func Decode(data []byte) (*State, error) {
	if !gjson.ValidBytes(data) {
		return New(), errors.New("cannot decode state: invalid json")
	}
	dist := gjson.GetBytes(data, "distribution")
	if !dist.IsObject() {
		return New(), nil
	}
	v := &VariantJSON{
		Family: dist.Get("family").String(),
		Name:   dist.Get("name").String(),
		Params: map[string]float64{},
	}
	dist.Get("params").ForEach(func(name, value gjson.Result) bool {
		if value.Type == gjson.Number {
			v.Params[name.String()] = value.Float()
		}
		return true
	})
	return Restore(SnapshotJSON{Distribution: v}), nil
}

// Load reads the persisted state from db. Any failure falls back to the
// defaults; it is only reported on the debug level.
func Load(db store.Store, log *logging.Logger) *State {
	data, err := db.Get(Key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Debugf("cannot read persisted state; using defaults: %v", err)
		}
		return New()
	}
	state, err := Decode(data)
	if err != nil {
		log.Debugf("using defaults: %v", err)
	}
	return state
}

// Save writes the state to db under Key.
func (s *State) Save(db store.Store) error {
	data, err := s.Encode()
	if err != nil {
		return err
	}
	if err := db.Put(Key, data); err != nil {
		return errors.Wrap(err, "cannot save state")
	}
	return nil
}
