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

	"golang.org/x/exp/constraints"
)

// Param describes one parameter of a variant together with the range
// its value may currently take.
type Param struct {
	Name   string  // stable key used for editing and persistence
	Prefix string  // label prefix shown in front of the input field
	Value  float64 // current value
	Min    float64 // lowest legal value (may be -Inf)
	Max    float64 // highest legal value (may be +Inf)
}

// Variant is a selectable distribution with parameters, a density
// function, a cumulative function, and a valid-parameter domain.
// The set of implementations is closed: Uniform, Gaussian, Gamma and
// LogNormal.
type Variant interface {
	// Family returns the tag of the variant.
	Family() Family

	// Name returns the display name of the variant.
	Name() string

	// Params returns the parameters in display order.
	Params() []Param

	// Set assigns a parameter, clamping the value into its legal
	// range. It returns the stored value and whether name is known.
	Set(name string, value float64) (float64, bool)

	// PDF returns the probability density at x.
	PDF(x float64) float64

	// CDF returns the cumulative probability P(X <= x).
	CDF(x float64) float64

	// Evaluate returns the pdf and cdf points for each x of the grid.
	Evaluate(grid []float64) (pdf, cdf [][2]float64)

	// Clone returns an independent copy of the variant.
	Clone() Variant

	variant()
}

// evaluate computes the pdf and cdf series of v over the grid. Both
// series have the grid's length and carry the grid's x-coordinates in
// order.
func evaluate(v Variant, grid []float64) (pdf, cdf [][2]float64) {
	pdf = make([][2]float64, len(grid))
	cdf = make([][2]float64, len(grid))
	for i, x := range grid {
		pdf[i] = [2]float64{x, v.PDF(x)}
		cdf[i] = [2]float64{x, v.CDF(x)}
	}
	return pdf, cdf
}

// clamp limits v to the closed interval [lo, hi].
func clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Default returns the documented default variant of a family. Unknown
// families yield the default Uniform variant.
func Default(f Family) Variant {
	switch f {
	case GaussianID:
		return &Gaussian{Mu: 0, Sigma: 1}
	case GammaID:
		return &Gamma{K: 2, Theta: 1}
	case LogNormalID:
		return &LogNormal{Mu: 0, Sigma: 1}
	default:
		return &Uniform{LowerBound: -1, UpperBound: 1}
	}
}

// New creates a variant of family f from its two parameters in display
// order. Parameters outside the domain are clamped; NaN parameters are
// replaced by the family's defaults.
func New(f Family, first, second float64) Variant {
	params := Default(f).Params()
	values := map[string]float64{
		params[0].Name: first,
		params[1].Name: second,
	}
	return FromParams(f, values)
}

// FromParams creates a variant of family f from named parameters.
// Missing or NaN parameters take the family's default values, and the
// result is clamped into the domain.
func FromParams(f Family, values map[string]float64) Variant {
	v := Default(f)
	get := func(name string, def float64) float64 {
		if x, ok := values[name]; ok && !math.IsNaN(x) {
			return x
		}
		return def
	}
	switch d := v.(type) {
	case *Uniform:
		d.LowerBound = get(uniformLower, d.LowerBound)
		d.UpperBound = get(uniformUpper, d.UpperBound)
		d.normalize()
	case *Gaussian:
		d.Mu = get(paramMu, d.Mu)
		d.Sigma = get(paramSigma, d.Sigma)
		d.normalize()
	case *Gamma:
		d.K = get(gammaShape, d.K)
		d.Theta = get(gammaScale, d.Theta)
		d.normalize()
	case *LogNormal:
		d.Mu = get(paramMu, d.Mu)
		d.Sigma = get(paramSigma, d.Sigma)
		d.normalize()
	}
	return v
}

// Values returns the parameters of v keyed by name.
func Values(v Variant) map[string]float64 {
	params := v.Params()
	out := make(map[string]float64, len(params))
	for _, p := range params {
		out[p.Name] = p.Value
	}
	return out
}
