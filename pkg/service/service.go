package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/icubam/bedmap-colorize/pkg/colorize"
)

// maxRequestBytes bounds one page of visible cells.
const maxRequestBytes = 1 << 20

// service represents the HTTP service.
type service struct {
	Host     string
	Port     int
	server   *http.Server
	defaults colorize.Options
}

// New creates a new service instance. defaults supplies the theme registry
// and the options used when a request leaves a field out.
func New(host string, port int, defaults colorize.Options) *service {
	return &service{
		Host:     host,
		Port:     port,
		defaults: defaults,
	}
}

// ColorizeRequest is the body of POST /api/colorize.
type ColorizeRequest struct {
	Cells        []colorize.Cell `json:"cells"`
	Theme        string          `json:"theme,omitempty"`
	Min          *float64        `json:"min,omitempty"`
	Max          *float64        `json:"max,omitempty"`
	Center       *float64        `json:"center,omitempty"`
	Percent      *bool           `json:"percent,omitempty"`
	Readable     *bool           `json:"readable,omitempty"`
	ZeroAnchored *bool           `json:"zero_anchored,omitempty"`
}

// ColorizeResponse is the success body of POST /api/colorize.
type ColorizeResponse struct {
	Results []colorize.ColorResult `json:"results"`
}

func (s *service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/themes", s.handleThemes)
	mux.HandleFunc("POST /api/colorize", s.handleColorize)
	return mux
}

// Start runs the HTTP server.
func (s *service) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	slog.Info("Starting HTTP service", "address", addr)

	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 3 * time.Second,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *service) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *service) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *service) handleThemes(w http.ResponseWriter, r *http.Request) {
	themes := s.defaults.Themes
	if themes == nil {
		themes = colorize.BuiltinThemes()
	}
	s.respond(w, http.StatusOK, themes)
}

func (s *service) handleColorize(w http.ResponseWriter, r *http.Request) {
	var req ColorizeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.respond(w, http.StatusBadRequest, map[string]string{"error": "Invalid request: " + err.Error()})
		return
	}

	results, err := colorize.Colorize(req.Cells, s.options(req))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, colorize.ErrUnknownTheme) || errors.Is(err, colorize.ErrInvalidColor) {
			status = http.StatusBadRequest
		}
		slog.Warn("Colorize request failed", "theme", req.Theme, "error", err)
		s.respond(w, status, map[string]string{"error": err.Error()})
		return
	}
	slog.Debug("Colorized cells", "cells", len(req.Cells), "results", len(results))
	s.respond(w, http.StatusOK, ColorizeResponse{Results: results})
}

func (s *service) options(req ColorizeRequest) colorize.Options {
	opts := s.defaults
	if req.Theme != "" {
		opts.Theme = req.Theme
	}
	if req.Min != nil {
		opts.Min = req.Min
	}
	if req.Max != nil {
		opts.Max = req.Max
	}
	if req.Center != nil {
		opts.Center = req.Center
	}
	if req.Percent != nil {
		opts.Percent = *req.Percent
	}
	if req.Readable != nil {
		opts.Readable = *req.Readable
	}
	if req.ZeroAnchored != nil {
		opts.ZeroAnchored = *req.ZeroAnchored
	}
	return opts
}

func (s *service) respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
