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

// LogNormal is the distribution of exp(X) for a normal X with mean Mu
// and standard deviation Sigma >= 0.
type LogNormal struct {
	Mu    float64
	Sigma float64
}

func (l *LogNormal) Family() Family { return LogNormalID }
func (l *LogNormal) Name() string   { return string(LogNormalID) }
func (l *LogNormal) variant()       {}

func (l *LogNormal) Params() []Param {
	return []Param{
		{Name: paramMu, Prefix: "mu: ", Value: l.Mu, Min: math.Inf(-1), Max: math.Inf(1)},
		{Name: paramSigma, Prefix: "sigma: ", Value: l.Sigma, Min: 0, Max: math.Inf(1)},
	}
}

func (l *LogNormal) Set(name string, value float64) (float64, bool) {
	switch name {
	case paramMu:
		if !math.IsNaN(value) {
			l.Mu = value
		}
		return l.Mu, true
	case paramSigma:
		if !math.IsNaN(value) {
			l.Sigma = clamp(value, 0, math.Inf(1))
		}
		return l.Sigma, true
	}
	return 0, false
}

func (l *LogNormal) normalize() {
	l.Sigma = math.Max(l.Sigma, 0)
}

func (l *LogNormal) dist() distuv.LogNormal {
	return distuv.LogNormal{Mu: l.Mu, Sigma: l.Sigma}
}

// PDF is zero outside the support (0, inf).
func (l *LogNormal) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return l.dist().Prob(x)
}

// CDF is zero outside the support (0, inf).
func (l *LogNormal) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return l.dist().CDF(x)
}

func (l *LogNormal) Evaluate(grid []float64) (pdf, cdf [][2]float64) {
	return evaluate(l, grid)
}

func (l *LogNormal) Clone() Variant {
	c := *l
	return &c
}
