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
	gammaShape = "k"
	gammaScale = "theta"
)

// Gamma is the gamma distribution in shape/scale form with K >= 0 and
// Theta >= 0.
type Gamma struct {
	K     float64
	Theta float64
}

func (g *Gamma) Family() Family { return GammaID }
func (g *Gamma) Name() string   { return string(GammaID) }
func (g *Gamma) variant()       {}

func (g *Gamma) Params() []Param {
	return []Param{
		{Name: gammaShape, Prefix: "k: ", Value: g.K, Min: 0, Max: math.Inf(1)},
		{Name: gammaScale, Prefix: "theta: ", Value: g.Theta, Min: 0, Max: math.Inf(1)},
	}
}

func (g *Gamma) Set(name string, value float64) (float64, bool) {
	var field *float64
	switch name {
	case gammaShape:
		field = &g.K
	case gammaScale:
		field = &g.Theta
	default:
		return 0, false
	}
	if !math.IsNaN(value) {
		*field = clamp(value, 0, math.Inf(1))
	}
	return *field, true
}

func (g *Gamma) normalize() {
	g.K = math.Max(g.K, 0)
	g.Theta = math.Max(g.Theta, 0)
}

// PDF uses gonum's rate parametrization, i.e. Beta = 1/Theta.
func (g *Gamma) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return distuv.Gamma{Alpha: g.K, Beta: 1 / g.Theta}.Prob(x)
}

// CDF evaluates the standard gamma distribution at x/Theta. The
// incomplete gamma function panics unless it sees a positive shape and a
// finite, non-negative argument; a zero shape or scale is a point mass at 0.
func (g *Gamma) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if g.K <= 0 {
		return 1
	}
	z := x / g.Theta
	if math.IsInf(z, 1) {
		return 1
	}
	return distuv.Gamma{Alpha: g.K, Beta: 1}.CDF(z)
}

func (g *Gamma) Evaluate(grid []float64) (pdf, cdf [][2]float64) {
	return evaluate(g, grid)
}

func (g *Gamma) Clone() Variant {
	c := *g
	return &c
}
