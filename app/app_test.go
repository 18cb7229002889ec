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
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/0xsoniclabs/distviz/distribution"
	"github.com/0xsoniclabs/distviz/logger"
	"github.com/0xsoniclabs/distviz/store"
)

func TestState_NewIsDefaultUniform(t *testing.T) {
	s := New()
	u, ok := s.Variant().(*distribution.Uniform)
	require.True(t, ok)
	assert.Equal(t, -1.0, u.LowerBound)
	assert.Equal(t, 1.0, u.UpperBound)
}

func TestState_SelectResetsToFamilyDefaults(t *testing.T) {
	s := New()
	for _, f := range distribution.Families() {
		s.Variant().Set(s.Variant().Params()[0].Name, 0.5)
		s.Select(f)
		assert.Equal(t, distribution.Default(f), s.Variant(), f)
	}
}

func TestState_SelectSameFamilyResets(t *testing.T) {
	s := NewWith(distribution.New(distribution.GaussianID, 3, 4))
	s.Select(distribution.GaussianID)
	assert.Equal(t, &distribution.Gaussian{Mu: 0, Sigma: 1}, s.Variant())
}

func TestState_EncodeDecodeRoundTrip(t *testing.T) {
	tests := []distribution.Variant{
		distribution.New(distribution.UniformID, -3, 7),
		distribution.New(distribution.GaussianID, 1.5, 0.25),
		distribution.New(distribution.GammaID, 9, 0.5),
		distribution.New(distribution.LogNormalID, -2, 0),
	}
	for _, v := range tests {
		t.Run(v.Name(), func(t *testing.T) {
			data, err := NewWith(v).Encode()
			require.NoError(t, err)
			got, err := Decode(data)
			require.NoError(t, err)
			assert.Equal(t, v, got.Variant())
		})
	}
}

func TestState_EncodeFormat(t *testing.T) {
	data, err := New().Encode()
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"distribution":{"family":"Uniform","name":"Uniform","params":{"lower_bound":-1,"upper_bound":1}}}`,
		string(data))
}

func TestState_DecodeMergesWithDefaults(t *testing.T) {
	tests := map[string]struct {
		input string
		want  distribution.Variant
	}{
		"empty object":    {`{}`, &distribution.Uniform{LowerBound: -1, UpperBound: 1}},
		"null":            {`{"distribution":null}`, &distribution.Uniform{LowerBound: -1, UpperBound: 1}},
		"unknown family":  {`{"distribution":{"family":"Cauchy"}}`, &distribution.Uniform{LowerBound: -1, UpperBound: 1}},
		"missing params":  {`{"distribution":{"family":"Gamma"}}`, &distribution.Gamma{K: 2, Theta: 1}},
		"partial params":  {`{"distribution":{"family":"Gaussian","params":{"mu":4}}}`, &distribution.Gaussian{Mu: 4, Sigma: 1}},
		"negative scale":  {`{"distribution":{"family":"LogNormal","params":{"mu":1,"sigma":-2}}}`, &distribution.LogNormal{Mu: 1, Sigma: 0}},
		"crossed bounds":  {`{"distribution":{"family":"Uniform","params":{"lower_bound":5,"upper_bound":2}}}`, &distribution.Uniform{LowerBound: 2, UpperBound: 2}},
		"unknown fields":  {`{"version":3,"distribution":{"family":"gamma","extra":true}}`, &distribution.Gamma{K: 2, Theta: 1}},
		"name is ignored": {`{"distribution":{"family":"Gaussian","name":"Uniform"}}`, &distribution.Gaussian{Mu: 0, Sigma: 1}},
		"mistyped param":  {`{"distribution":{"family":"Gaussian","params":{"mu":"abc","sigma":3}}}`, &distribution.Gaussian{Mu: 0, Sigma: 3}},
		"mistyped family": {`{"distribution":{"family":7,"params":{"k":5}}}`, &distribution.Uniform{LowerBound: -1, UpperBound: 1}},
		"not an object":   {`{"distribution":"Gamma"}`, &distribution.Uniform{LowerBound: -1, UpperBound: 1}},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Decode([]byte(test.input))
			require.NoError(t, err)
			assert.Equal(t, test.want, got.Variant())
		})
	}
}

func TestState_DecodeCorruptDataYieldsDefaults(t *testing.T) {
	got, err := Decode([]byte("{not json"))
	assert.Error(t, err)
	require.NotNil(t, got)
	assert.Equal(t, New().Variant(), got.Variant())
}

func TestState_LoadReadsPersistedState(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := store.NewMockStore(ctrl)
	db.EXPECT().Get(Key).Return([]byte(`{"distribution":{"family":"Gamma","params":{"k":3,"theta":2}}}`), nil)

	s := Load(db, logger.NewLogger("critical", "test"))
	assert.Equal(t, &distribution.Gamma{K: 3, Theta: 2}, s.Variant())
}

func TestState_LoadFallsBackToDefaults(t *testing.T) {
	tests := map[string]struct {
		data []byte
		err  error
	}{
		"missing":       {nil, store.ErrNotFound},
		"backend error": {nil, errors.New("io error")},
		"corrupt":       {[]byte("\x00\x01"), nil},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			db := store.NewMockStore(ctrl)
			db.EXPECT().Get(Key).Return(test.data, test.err)

			s := Load(db, logger.NewLogger("critical", "test"))
			assert.Equal(t, New().Variant(), s.Variant())
		})
	}
}

func TestState_SaveWritesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := store.NewMockStore(ctrl)
	s := NewWith(distribution.New(distribution.LogNormalID, 0.5, 2))
	want, err := s.Encode()
	require.NoError(t, err)
	db.EXPECT().Put(Key, want).Return(nil)

	assert.NoError(t, s.Save(db))
}

func TestState_SaveReportsStoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := store.NewMockStore(ctrl)
	db.EXPECT().Put(Key, gomock.Any()).Return(errors.New("read-only"))

	err := New().Save(db)
	assert.ErrorContains(t, err, "read-only")
}

func TestState_SaveFailsOnNonFiniteParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := store.NewMockStore(ctrl)
	s := NewWith(distribution.New(distribution.GaussianID, math.Inf(1), 1))

	assert.Error(t, s.Save(db))
}

func TestState_SaveAndLoadWithMemoryStore(t *testing.T) {
	db, err := store.NewMemory()
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close())
	}()

	s := New()
	s.Select(distribution.LogNormalID)
	s.Variant().Set("sigma", 0.3)
	require.NoError(t, s.Save(db))

	got := Load(db, logger.NewLogger("critical", "test"))
	assert.Equal(t, &distribution.LogNormal{Mu: 0, Sigma: 0.3}, got.Variant())
}
