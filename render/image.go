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

package render

import (
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Image size; the image keeps the 2:1 aspect ratio of the chart.
const (
	imageWidth  = 8 * vg.Inch
	imageHeight = 4 * vg.Inch
)

// imageFormats are the file extensions written as images.
var imageFormats = map[string]bool{"png": true, "svg": true, "pdf": true}

// ImageFormat returns the image format implied by the extension of
// path. It reports false for paths that should get an html chart.
func ImageFormat(path string) (string, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	return ext, imageFormats[ext]
}

// segments splits points into runs of finite values. Non-finite values
// leave gaps.
func segments(points [][2]float64) []plotter.XYs {
	var res []plotter.XYs
	var cur plotter.XYs
	for _, p := range points {
		if math.IsNaN(p[1]) || math.IsInf(p[1], 0) {
			if len(cur) > 0 {
				res = append(res, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: p[0], Y: p[1]})
	}
	if len(cur) > 0 {
		res = append(res, cur)
	}
	return res
}

// NewImage creates a static plot of the pdf and cdf of p.
func NewImage(p Plot) (*plot.Plot, error) {
	img := plot.New()
	img.Title.Text = p.Title
	img.X.Label.Text = "x"
	img.Legend.Top = true
	for i, s := range []Series{p.PDF, p.CDF} {
		for j, xys := range segments(s.Points) {
			line, err := plotter.NewLine(xys)
			if err != nil {
				return nil, errors.Wrapf(err, "cannot plot %v", s.Label)
			}
			line.Color = plotutil.Color(i)
			img.Add(line)
			if j == 0 {
				img.Legend.Add(s.Label, line)
			}
		}
	}
	return img, nil
}

// WriteImage renders the plot as a png, svg or pdf image.
func WriteImage(w io.Writer, p Plot, format string) error {
	img, err := NewImage(p)
	if err != nil {
		return err
	}
	writer, err := img.WriterTo(imageWidth, imageHeight, format)
	if err != nil {
		return errors.Wrapf(err, "cannot render %v image", format)
	}
	if _, err := writer.WriteTo(w); err != nil {
		return errors.Wrap(err, "cannot write image")
	}
	return nil
}
