// Package server exposes the pipeline over HTTP for the presentation
// layer. The server owns one long-lived pipeline; requests run
// concurrently and share only the result cache.
package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jonathan/market-intel/internal/pipeline"
)

// Config holds server settings.
type Config struct {
	Port int
}

// Server is the HTTP boundary.
type Server struct {
	cfg Config
	mux *http.ServeMux
}

// New creates a server around a wired pipeline.
func New(cfg Config, p *pipeline.Pipeline) *Server {
	s := &Server{cfg: cfg, mux: http.NewServeMux()}
	h := &handler{pipeline: p}

	s.mux.HandleFunc("GET /healthz", h.health)
	s.mux.HandleFunc("POST /v1/scrape", h.scrape)
	s.mux.HandleFunc("POST /v1/analyze", h.analyze)
	s.mux.HandleFunc("GET /v1/cache/stats", h.cacheStats)

	return s
}

// Handler returns the routed handler, used directly by httptest.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start blocks serving HTTP until the listener fails.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", addr)
	return srv.ListenAndServe()
}
