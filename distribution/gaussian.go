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
	paramMu    = "mu"
	paramSigma = "sigma"
)

// Gaussian is the normal distribution with mean Mu and standard
// deviation Sigma >= 0.
type Gaussian struct {
	Mu    float64
	Sigma float64
}

func (g *Gaussian) Family() Family { return GaussianID }
func (g *Gaussian) Name() string   { return string(GaussianID) }
func (g *Gaussian) variant()       {}

func (g *Gaussian) Params() []Param {
	return []Param{
		{Name: paramMu, Prefix: "mu: ", Value: g.Mu, Min: math.Inf(-1), Max: math.Inf(1)},
		{Name: paramSigma, Prefix: "sigma: ", Value: g.Sigma, Min: 0, Max: math.Inf(1)},
	}
}

func (g *Gaussian) Set(name string, value float64) (float64, bool) {
	switch name {
	case paramMu:
		if !math.IsNaN(value) {
			g.Mu = value
		}
		return g.Mu, true
	case paramSigma:
		if !math.IsNaN(value) {
			g.Sigma = clamp(value, 0, math.Inf(1))
		}
		return g.Sigma, true
	}
	return 0, false
}

func (g *Gaussian) normalize() {
	g.Sigma = math.Max(g.Sigma, 0)
}

func (g *Gaussian) dist() distuv.Normal {
	return distuv.Normal{Mu: g.Mu, Sigma: g.Sigma}
}

func (g *Gaussian) PDF(x float64) float64 { return g.dist().Prob(x) }
func (g *Gaussian) CDF(x float64) float64 { return g.dist().CDF(x) }

func (g *Gaussian) Evaluate(grid []float64) (pdf, cdf [][2]float64) {
	return evaluate(g, grid)
}

func (g *Gaussian) Clone() Variant {
	c := *g
	return &c
}
