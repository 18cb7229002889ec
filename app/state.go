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

// Package app holds the application state: exactly one active
// distribution variant, replaced wholesale on family selection and
// persisted between runs.
package app

import (
	"github.com/0xsoniclabs/distviz/distribution"
)

// State is the mutable application state. It is owned by a single
// goroutine; callers must not share it without synchronization.
type State struct {
	variant distribution.Variant
}

// New returns the state used when nothing was persisted.
func New() *State {
	return &State{variant: distribution.Default(distribution.UniformID)}
}

// NewWith returns a state whose active variant is v.
func NewWith(v distribution.Variant) *State {
	if v == nil {
		return New()
	}
	return &State{variant: v}
}

// Variant returns the active variant. Edits through the returned value
// mutate the state in place.
func (s *State) Variant() distribution.Variant {
	return s.variant
}

// Select replaces the active variant with the defaults of family f.
// Selecting the current family resets it as well.
func (s *State) Select(f distribution.Family) {
	s.variant = distribution.Default(f)
}

// Reset restores the startup defaults.
func (s *State) Reset() {
	s.variant = distribution.Default(distribution.UniformID)
}
