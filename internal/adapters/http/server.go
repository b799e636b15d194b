// Package http exposes the engine over a small JSON API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quernlab/quern"
	"github.com/quernlab/quern/pkg/domain"
)

// Baker is the engine surface the server depends on.
type Baker interface {
	Bake(ctx context.Context, r *domain.Recipe, input string) (*quern.BakeResult, error)
	Validate(r *domain.Recipe) []string
	Operations() []string
}

// Server wires the engine into an HTTP handler.
type Server struct {
	engine Baker
	logger *slog.Logger
}

// NewHandler creates the HTTP handler for the engine. If gatherer is non-nil
// a /metrics endpoint is mounted for it.
func NewHandler(engine Baker, logger *slog.Logger, gatherer prometheus.Gatherer) http.Handler {
	s := &Server{engine: engine, logger: logger}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	r.Get("/v1/operations", s.operations)
	r.Post("/v1/run", s.run)
	r.Post("/v1/validate", s.validate)
	return r
}

type runRequest struct {
	Recipe json.RawMessage `json:"recipe"`
	Input  string          `json:"input"`
}

type runResponse struct {
	Output    string   `json:"output"`
	RunID     string   `json:"run_id"`
	Jumps     int      `json:"jumps"`
	Registers []string `json:"registers,omitempty"`
}

// run handles POST /v1/run.
func (s *Server) run(w http.ResponseWriter, r *http.Request) {
	var body runRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	recipe, err := quern.ParseRecipeJSON(body.Recipe)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := s.engine.Bake(r.Context(), recipe, body.Input)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrOpNotFound) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}

	writeJSON(w, s.logger, runResponse{
		Output:    res.Output,
		RunID:     res.RunID,
		Jumps:     res.Jumps,
		Registers: res.Registers,
	})
}

type validateResponse struct {
	Valid       bool     `json:"valid"`
	Diagnostics []string `json:"diagnostics,omitempty"`
}

// validate handles POST /v1/validate.
func (s *Server) validate(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	recipe, err := quern.ParseRecipeJSON(raw)
	if err != nil {
		writeJSON(w, s.logger, validateResponse{Valid: false, Diagnostics: []string{err.Error()}})
		return
	}

	diags := s.engine.Validate(recipe)
	writeJSON(w, s.logger, validateResponse{Valid: len(diags) == 0, Diagnostics: diags})
}

// operations handles GET /v1/operations.
func (s *Server) operations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.logger, map[string][]string{"operations": s.engine.Operations()})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("response encode failed", "err", err)
	}
}
