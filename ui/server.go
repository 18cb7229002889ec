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
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/gzhttp"
	"github.com/op/go-logging"

	"github.com/0xsoniclabs/distviz/app"
	"github.com/0xsoniclabs/distviz/distribution"
	"github.com/0xsoniclabs/distviz/editor"
	"github.com/0xsoniclabs/distviz/render"
)

const shutdownTimeout = 5 * time.Second

// Options configure the UI server.
type Options struct {
	Addr   string        // listen address, e.g. "localhost:8080"
	Hosted bool          // hides the Quit menu; the process is not owned by the user
	Domain render.Domain // sampled x-range of the chart
}

// Server serves the UI page and its chart.
type Server struct {
	loop     *Loop
	opts     Options
	log      *logging.Logger
	quit     chan struct{}
	quitOnce sync.Once
}

// NewServer creates a server posting all state access to loop.
func NewServer(loop *Loop, opts Options, log *logging.Logger) *Server {
	if opts.Domain.N == 0 {
		opts.Domain = render.DefaultDomain()
	}
	return &Server{
		loop: loop,
		opts: opts,
		log:  log,
		quit: make(chan struct{}),
	}
}

// Quit is closed once the user chose File > Quit.
func (s *Server) Quit() <-chan struct{} {
	return s.quit
}

// Handler returns the gzip-compressed HTTP surface of the UI.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.renderPage)
	r.Get("/"+chartRef, s.renderChart)
	r.Post("/"+selectRef, s.selectFamily)
	r.Post("/"+paramRef, s.editParam)
	r.Post("/"+quitRef, s.quitApp)
	r.Get("/"+stateRef, s.renderState)
	r.Get("/"+seriesRef, s.renderSeries)
	return gzhttp.GzipHandler(r)
}

// logRequests logs every request on the debug level.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debugf("%v %v took %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// Serve listens on the configured address until ctx is done or the
// user quits.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return errors.Wrapf(err, "cannot listen on %v", s.opts.Addr)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener serves on ln until ctx is done or the user quits, then
// shuts the HTTP server down gracefully.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.Handler()}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.log.Noticef("Visualizer available at http://%v", ln.Addr())

	select {
	case err := <-errCh:
		return errors.Wrap(err, "ui server failed")
	case <-ctx.Done():
		s.log.Info("Context done; shutting down")
	case <-s.quit:
		s.log.Info("Quit requested; shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "cannot shut down ui server")
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "ui server failed")
	}
	return nil
}

// do runs fn on the UI goroutine and reports an unavailable loop or a
// failed task.
func (s *Server) do(w http.ResponseWriter, r *http.Request, fn func(*app.State)) bool {
	err := s.loop.Do(r.Context(), fn)
	switch {
	case err == nil:
		return true
	case errors.Is(err, ErrStopped), r.Context().Err() != nil:
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		s.log.Errorf("%v %v: %v", r.Method, r.URL.Path, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
	return false
}

// renderPage renders the side panel and the chart frame.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request) {
	var data pageData
	ok := s.do(w, r, func(st *app.State) {
		v := st.Variant()
		data = pageData{
			Hosted:   s.opts.Hosted,
			Families: distribution.Families(),
			Selected: v.Family(),
			Name:     v.Name(),
			Fields:   editor.Fields(v),
		}
	})
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.log.Errorf("cannot render page; %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// frame evaluates the active variant on the UI goroutine.
func (s *Server) frame(w http.ResponseWriter, r *http.Request) (render.Plot, bool) {
	var plot render.Plot
	ok := s.do(w, r, func(st *app.State) {
		plot = render.Frame(st.Variant(), s.opts.Domain)
	})
	return plot, ok
}

// renderChart renders the pdf and cdf chart of the active variant.
func (s *Server) renderChart(w http.ResponseWriter, r *http.Request) {
	plot, ok := s.frame(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := render.WriteChart(&buf, plot); err != nil {
		s.log.Errorf("cannot render chart; %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// selectFamily replaces the active variant by the defaults of the
// submitted family.
func (s *Server) selectFamily(w http.ResponseWriter, r *http.Request) {
	f, ok := distribution.ParseFamily(r.FormValue("family"))
	if !ok {
		http.Error(w, "unknown distribution family", http.StatusBadRequest)
		return
	}
	if !s.do(w, r, func(st *app.State) { st.Select(f) }) {
		return
	}
	s.log.Debugf("Selected %v", f)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// editParam applies a typed value or a drag step to a parameter.
// Illegal input is ignored.
func (s *Server) editParam(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	value := r.FormValue("value")
	delta, dragErr := strconv.ParseFloat(r.FormValue("delta"), 64)
	drag := dragErr == nil && !math.IsNaN(delta) && !math.IsInf(delta, 0)

	var changed bool
	ok := s.do(w, r, func(st *app.State) {
		if drag {
			changed = editor.Drag(st.Variant(), name, delta)
		} else {
			changed = editor.Apply(st.Variant(), name, value)
		}
	})
	if !ok {
		return
	}
	if changed {
		s.log.Debugf("Parameter %v changed", name)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// quitApp closes the window. Hosted instances have no Quit menu.
func (s *Server) quitApp(w http.ResponseWriter, r *http.Request) {
	if s.opts.Hosted {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(quitHtml))
	s.quitOnce.Do(func() { close(s.quit) })
}

// fieldJSON is a parameter as reported by the API. Infinite limits are
// reported as null.
type fieldJSON struct {
	Name  string   `json:"name"`
	Label string   `json:"label"`
	Value *float64 `json:"value"`
	Min   *float64 `json:"min"`
	Max   *float64 `json:"max"`
	Step  float64  `json:"step"`
}

// stateJSON is the active variant as reported by the API.
type stateJSON struct {
	Family string      `json:"family"`
	Name   string      `json:"name"`
	Fields []fieldJSON `json:"fields"`
}

// seriesJSON is a frame as reported by the API. Non-finite values are
// reported as null.
type seriesJSON struct {
	Title string        `json:"title"`
	PDF   [][2]*float64 `json:"pdf"`
	CDF   [][2]*float64 `json:"cdf"`
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func convertPoints(points [][2]float64) [][2]*float64 {
	res := make([][2]*float64, len(points))
	for i, p := range points {
		res[i] = [2]*float64{finite(p[0]), finite(p[1])}
	}
	return res
}

// renderState reports the active variant and its fields.
func (s *Server) renderState(w http.ResponseWriter, r *http.Request) {
	var res stateJSON
	ok := s.do(w, r, func(st *app.State) {
		v := st.Variant()
		res = stateJSON{Family: v.Family().String(), Name: v.Name()}
		for _, f := range editor.Fields(v) {
			res.Fields = append(res.Fields, fieldJSON{
				Name:  f.Name,
				Label: f.Label,
				Value: finite(f.Value),
				Min:   finite(f.Min),
				Max:   finite(f.Max),
				Step:  f.Step,
			})
		}
	})
	if !ok {
		return
	}
	s.writeJSON(w, res)
}

// renderSeries reports the pdf and cdf of the active variant.
func (s *Server) renderSeries(w http.ResponseWriter, r *http.Request) {
	plot, ok := s.frame(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, seriesJSON{
		Title: plot.Title,
		PDF:   convertPoints(plot.PDF.Points),
		CDF:   convertPoints(plot.CDF.Points),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Errorf("cannot encode response; %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}
