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

	"github.com/cockroachdb/errors"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Chart size; the plot keeps a 2:1 aspect ratio.
const (
	chartWidth  = "960px"
	chartHeight = "480px"
)

// gap marks a point the chart leaves out.
const gap = "-"

// convertSeries converts points to chart points. Non-finite values
// cannot be encoded and become gaps.
func convertSeries(data [][2]float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(data))
	for _, pair := range data {
		if math.IsNaN(pair[1]) || math.IsInf(pair[1], 0) {
			items = append(items, opts.LineData{Value: []interface{}{pair[0], gap}})
			continue
		}
		items = append(items, opts.LineData{Value: pair})
	}
	return items
}

// NewChart creates a line chart showing the pdf and cdf of a plot.
func NewChart(plot Plot) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		PageTitle: plot.Title,
		Width:     chartWidth,
		Height:    chartHeight,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
		charts.WithTitleOpts(opts.Title{
			Title: plot.Title,
		}))
	chart.AddSeries(plot.PDF.Label, convertSeries(plot.PDF.Points)).
		AddSeries(plot.CDF.Label, convertSeries(plot.CDF.Points))
	return chart
}

// WriteChart renders the chart of a plot as a standalone HTML page.
func WriteChart(w io.Writer, plot Plot) error {
	if err := NewChart(plot).Render(w); err != nil {
		return errors.Wrap(err, "cannot render chart")
	}
	return nil
}
