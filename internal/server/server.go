// Package server exposes the catalog as a small read-only JSON API: the Go
// rendition of the original data dashboard. Datasets are loaded from disk per
// request; nothing here mutates them.
package server

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/NoonWatt/solarscan-cli/internal/catalog"
	"github.com/NoonWatt/solarscan-cli/internal/compare"
	"github.com/NoonWatt/solarscan-cli/internal/dataset"
	"github.com/NoonWatt/solarscan-cli/internal/stats"
)

// Options carries the analysis parameters shared by all endpoints.
type Options struct {
	KeyColumns       []string
	MissingWarnPct   float64
	OutlierThreshold float64
}

// Server serves summaries and comparisons over the registered datasets.
type Server struct {
	catalog *catalog.Catalog
	opt     Options
	logger  *slog.Logger
}

// New creates a Server over the given catalog.
func New(cat *catalog.Catalog, opt Options, logger *slog.Logger) *Server {
	if len(opt.KeyColumns) == 0 {
		opt.KeyColumns = dataset.KeyColumns()
	}
	return &Server{catalog: cat, opt: opt, logger: logger.With(slog.String("component", "server"))}
}

// Routes returns the chi router for all endpoints.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/datasets", s.handleListDatasets)
		r.Get("/datasets/{name}/summary", s.handleSummary)
		r.Get("/compare", s.handleCompare)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func (s *Server) handleListDatasets(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.catalog.List())
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	d, err := s.catalog.Get(name)
	if err != nil {
		s.renderError(w, r, http.StatusNotFound, err)
		return
	}
	t, err := dataset.ReadCSV(d.Path, s.opt.KeyColumns)
	if err != nil {
		s.renderError(w, r, http.StatusUnprocessableEntity, err)
		return
	}
	p := stats.NewProfile(t, stats.ProfileOptions{
		Columns:          s.opt.KeyColumns,
		MissingWarnPct:   s.opt.MissingWarnPct,
		OutlierThreshold: s.opt.OutlierThreshold,
		Correlations:     r.URL.Query().Get("correlations") == "true",
	})
	s.logger.Info("served summary", slog.String("dataset", d.Name), slog.Int("rows", t.Rows))
	render.JSON(w, r, p)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	metric := r.URL.Query().Get("metric")
	if metric == "" {
		metric = "GHI"
	}
	filter, err := rangeFilterFromQuery(r)
	if err != nil {
		s.renderError(w, r, http.StatusBadRequest, err)
		return
	}

	rows := make([]compare.Row, 0, len(s.catalog.Datasets))
	for _, d := range s.catalog.List() {
		t, err := dataset.ReadCSV(d.Path, s.opt.KeyColumns)
		if err != nil {
			s.renderError(w, r, http.StatusUnprocessableEntity, err)
			return
		}
		row, err := compare.Summarize(d.Name, t, metric, filter)
		if err != nil {
			s.renderError(w, r, http.StatusBadRequest, err)
			return
		}
		rows = append(rows, row)
	}
	s.logger.Info("served comparison", slog.String("metric", metric), slog.Int("datasets", len(rows)))
	render.JSON(w, r, rows)
}

// rangeFilterFromQuery builds the optional ?filter=GHI&min=..&max=.. filter.
func rangeFilterFromQuery(r *http.Request) (*compare.RangeFilter, error) {
	col := r.URL.Query().Get("filter")
	if col == "" {
		return nil, nil
	}
	f := &compare.RangeFilter{Column: col}
	if raw := r.URL.Query().Get("min"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		f.Min = &v
	}
	if raw := r.URL.Query().Get("max"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		f.Max = &v
	}
	return f, nil
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.logger.Warn("request failed",
		slog.Int("status", status),
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()))
	render.Status(r, status)
	render.JSON(w, r, map[string]string{"error": err.Error()})
}
