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

package distribution

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	uniformLower = "lower_bound"
	uniformUpper = "upper_bound"
)

// Uniform is the continuous uniform distribution on
// [LowerBound, UpperBound]. LowerBound <= UpperBound always holds.
type Uniform struct {
	LowerBound float64
	UpperBound float64
}

func (u *Uniform) Family() Family { return UniformID }
func (u *Uniform) Name() string   { return string(UniformID) }
func (u *Uniform) variant()       {}

// Params exposes both bounds; each bound's range is limited by the
// other one.
func (u *Uniform) Params() []Param {
	return []Param{
		{Name: uniformLower, Prefix: "Lower bound: ", Value: u.LowerBound, Min: math.Inf(-1), Max: u.UpperBound},
		{Name: uniformUpper, Prefix: "Upper bound: ", Value: u.UpperBound, Min: u.LowerBound, Max: math.Inf(1)},
	}
}

func (u *Uniform) Set(name string, value float64) (float64, bool) {
	if math.IsNaN(value) {
		return u.get(name)
	}
	switch name {
	case uniformLower:
		u.LowerBound = clamp(value, math.Inf(-1), u.UpperBound)
		return u.LowerBound, true
	case uniformUpper:
		u.UpperBound = clamp(value, u.LowerBound, math.Inf(1))
		return u.UpperBound, true
	}
	return 0, false
}

func (u *Uniform) get(name string) (float64, bool) {
	switch name {
	case uniformLower:
		return u.LowerBound, true
	case uniformUpper:
		return u.UpperBound, true
	}
	return 0, false
}

// normalize clamps the lower bound against the upper one, matching the
// order in which the editor applies the two ranges.
func (u *Uniform) normalize() {
	u.LowerBound = math.Min(u.LowerBound, u.UpperBound)
}

func (u *Uniform) dist() distuv.Uniform {
	return distuv.Uniform{Min: u.LowerBound, Max: u.UpperBound}
}

func (u *Uniform) PDF(x float64) float64 { return u.dist().Prob(x) }
func (u *Uniform) CDF(x float64) float64 { return u.dist().CDF(x) }

func (u *Uniform) Evaluate(grid []float64) (pdf, cdf [][2]float64) {
	return evaluate(u, grid)
}

func (u *Uniform) Clone() Variant {
	c := *u
	return &c
}
