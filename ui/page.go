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

package ui

import (
	"html/template"
	"strconv"

	"github.com/0xsoniclabs/distviz/distribution"
	"github.com/0xsoniclabs/distviz/editor"
)

// HTML references of the routes.
const (
	chartRef  = "chart"
	selectRef = "select"
	paramRef  = "param"
	quitRef   = "quit"
	stateRef  = "api/state"
	seriesRef = "api/series"
)

const pageHtml = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>Distribution Visualizer</title>
    <style>
      body { margin: 0; font-family: sans-serif; }
      nav { background: #eee; padding: 4px 8px; }
      main { display: flex; }
      aside { padding: 8px; min-width: 240px; }
      iframe { border: 0; width: 980px; height: 500px; }
      form { margin: 4px 0; }
      .apply { position: absolute; left: -9999px; }
    </style>
  </head>
  <body>
    {{- if not .Hosted}}
    <nav>
      <details>
        <summary>File</summary>
        <form method="post" action="/` + quitRef + `"><button type="submit">Quit</button></form>
      </details>
    </nav>
    {{- end}}
    <main>
      <aside>
        <form method="post" action="/` + selectRef + `">
          <label for="family">Distribution</label>
          <select id="family" name="family" onchange="this.form.submit()">
            {{- range .Families}}
            <option value="{{.}}"{{if eq . $.Selected}} selected{{end}}>{{.}}</option>
            {{- end}}
          </select>
          <noscript><button type="submit">Select</button></noscript>
        </form>
        <h3>{{.Name}}</h3>
        {{- range .Fields}}
        <form method="post" action="/` + paramRef + `">
          <input type="hidden" name="name" value="{{.Name}}">
          <label>{{.Label}}<input type="number" name="value" step="any" value="{{num .Value}}"
            {{- if .HasMin}} min="{{num .Min}}"{{end}}{{if .HasMax}} max="{{num .Max}}"{{end}}
            onchange="this.form.submit()"></label>
          <button type="submit" class="apply" tabindex="-1" aria-hidden="true">Set</button>
          <button type="submit" name="delta" value="{{num (neg .Step)}}">-</button>
          <button type="submit" name="delta" value="{{num .Step}}">+</button>
        </form>
        {{- end}}
      </aside>
      <iframe src="/` + chartRef + `" title="chart"></iframe>
    </main>
  </body>
</html>
`

const quitHtml = `<!DOCTYPE html>
<html lang="en">
  <head><meta charset="utf-8"><title>Distribution Visualizer</title></head>
  <body><p>The visualizer has been closed.</p></body>
</html>
`

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"num": func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) },
	"neg": func(v float64) float64 { return -v },
}).Parse(pageHtml))

// pageData is the view model of the main page, captured on the UI
// goroutine.
type pageData struct {
	Hosted   bool
	Families []distribution.Family
	Selected distribution.Family
	Name     string
	Fields   []editor.Field
}
