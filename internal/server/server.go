// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes protein lookups over HTTP: a JSON API for the
// presentation layer and the viewer page that consumes it.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/pdiddy/protein-viewer/internal/alphafold"
	"github.com/pdiddy/protein-viewer/internal/logging"
	"github.com/pdiddy/protein-viewer/internal/uniprot"
	"github.com/pdiddy/protein-viewer/internal/viewer"
	"github.com/pdiddy/protein-viewer/pkg/types"
)

// Proteins is the lookup capability the handlers need.
type Proteins interface {
	Lookup(ctx context.Context, accession string, evidenceFilter []string) (types.Protein, error)
	Function(ctx context.Context, accession string, evidenceFilter []string) (string, error)
}

// Server routes HTTP requests to a Proteins implementation.
type Server struct {
	router   chi.Router
	proteins Proteins
	cfg      types.ServerConfig
	logger   *zap.Logger
}

// New builds the router.
func New(proteins Proteins, cfg types.ServerConfig, logger *zap.Logger) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		proteins: proteins,
		cfg:      cfg,
		logger:   logging.OrNop(logger),
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.logRequests)

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.router.Get("/", s.handleIndex)
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/protein/{accession}", s.handleProtein)
		r.Get("/protein/{accession}/function", s.handleFunction)
		r.Get("/style/{scheme}", s.handleStyle)
	})
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("dur", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	color := r.URL.Query().Get("color")
	if color == "" {
		color = s.cfg.DefaultColor
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := viewer.RenderPage(w, viewer.PageData{
		Accession: r.URL.Query().Get("accession"),
		Color:     color,
	})
	if err != nil {
		s.writeError(w, err)
	}
}

func (s *Server) handleProtein(w http.ResponseWriter, r *http.Request) {
	p, err := s.proteins.Lookup(r.Context(), chi.URLParam(r, "accession"), evidenceFilter(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// functionResponse is the body of the function-only endpoint.
type functionResponse struct {
	Accession string `json:"uniprot_accession"`
	Summary   string `json:"protein_summary"`
}

func (s *Server) handleFunction(w http.ResponseWriter, r *http.Request) {
	acc := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "accession")))
	summary, err := s.proteins.Function(r.Context(), acc, evidenceFilter(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, functionResponse{Accession: acc, Summary: summary})
}

func (s *Server) handleStyle(w http.ResponseWriter, r *http.Request) {
	style, err := viewer.Style(chi.URLParam(r, "scheme"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, style)
}

// evidenceFilter reads ?eco=ECO:0000269,ECO:0000255; the parameter may
// also repeat.
func evidenceFilter(r *http.Request) []string {
	var out []string
	for _, v := range r.URL.Query()["eco"] {
		out = append(out, strings.Split(v, ",")...)
	}
	return out
}

// statusFor maps lookup failures onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, uniprot.ErrInvalidAccession), errors.Is(err, viewer.ErrUnknownScheme):
		return http.StatusBadRequest
	case errors.Is(err, alphafold.ErrNoPrediction), errors.Is(err, alphafold.ErrNoModelURL):
		return http.StatusNotFound
	case errors.Is(err, uniprot.ErrSourceUnavailable), errors.Is(err, alphafold.ErrUnexpectedFormat):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	var se *alphafold.StatusError
	if errors.As(err, &se) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Int("status", status), zap.Error(err))
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
