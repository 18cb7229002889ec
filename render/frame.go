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

// Package render evaluates the active distribution on a fixed grid and
// turns the result into line charts.
package render

import (
	"gonum.org/v1/gonum/floats"

	"github.com/0xsoniclabs/distviz/distribution"
)

// Series labels.
const (
	PDFLabel = "pdf"
	CDFLabel = "cdf"
)

// Domain is the sampled x-range of a frame.
type Domain struct {
	Min float64
	Max float64
	N   int
}

// DefaultDomain samples x in [-10, 10] at 1000 points.
func DefaultDomain() Domain {
	return Domain{Min: -10, Max: 10, N: 1000}
}

// Grid returns N evenly spaced values from Min to Max inclusive. A
// single point grid holds Min; N < 1 yields an empty grid.
func (d Domain) Grid() []float64 {
	switch {
	case d.N < 1:
		return []float64{}
	case d.N == 1:
		return []float64{d.Min}
	}
	return floats.Span(make([]float64, d.N), d.Min, d.Max)
}

// Series is a labeled list of (x, y) points.
type Series struct {
	Label  string
	Points [][2]float64
}

// Plot is the result of one frame.
type Plot struct {
	Title string
	PDF   Series
	CDF   Series
}

// Frame evaluates v over the grid of d. It is recomputed on every call.
func Frame(v distribution.Variant, d Domain) Plot {
	pdf, cdf := v.Evaluate(d.Grid())
	return Plot{
		Title: v.Name(),
		PDF:   Series{Label: PDFLabel, Points: pdf},
		CDF:   Series{Label: CDFLabel, Points: cdf},
	}
}
