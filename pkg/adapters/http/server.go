package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aretw0/firstrun/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Engine defines what the HTTP adapter needs from the onboarding engine.
type Engine interface {
	ports.PlanService
}

// Server exposes the onboarding plan over HTTP.
type Server struct {
	Engine   Engine
	Logger   *slog.Logger
	Gatherer prometheus.Gatherer
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the request logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetrics mounts /metrics serving the given gatherer.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// PageCountResponse is the body of GET /plan/count.
type PageCountResponse struct {
	PageCount int `json:"page_count"`
}

// PromotionResponse is the body of POST /promotion/shown.
type PromotionResponse struct {
	Count int `json:"count"`
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{
		Engine: engine,
		Logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Get("/plan", server.Plan)
	r.Get("/plan/count", server.PageCount)
	r.Post("/promotion/shown", server.PromotionShown)
	if server.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(server.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Plan handles GET /plan. It builds a fresh plan on every request.
func (s *Server) Plan(w http.ResponseWriter, r *http.Request) {
	plan, err := s.Engine.BuildPageBlueprints(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Plan error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("Plan failed", "error", err)
		return
	}
	s.writeJSON(w, plan)
}

// PageCount handles GET /plan/count.
func (s *Server) PageCount(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, PageCountResponse{PageCount: s.Engine.PageCount()})
}

// PromotionShown handles POST /promotion/shown.
func (s *Server) PromotionShown(w http.ResponseWriter, r *http.Request) {
	count, err := s.Engine.RecordPromotionDialogShown(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Record error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("PromotionShown failed", "error", err)
		return
	}
	s.Logger.Debug("promotion dialog recorded", "count", count)
	s.writeJSON(w, PromotionResponse{Count: count})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}
