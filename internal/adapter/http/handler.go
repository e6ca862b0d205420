package httpadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ad-budget/internal/core/port"
)

// SweepTrigger runs a registered sweep immediately.
type SweepTrigger interface {
	RunNow(ctx context.Context, name string) (port.SweepReport, error)
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: spend events go to the use case, manual sweep triggers go to the
// scheduler. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.BudgetUseCase
	sweeps SweepTrigger
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. metrics, when
// non-nil, is mounted at /metrics.
func NewHandler(svc port.BudgetUseCase, sweeps SweepTrigger, metrics http.Handler, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, sweeps: sweeps, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns/{id}/spend", h.handleSpend)
		r.Post("/sweeps/{name}", h.handleSweep)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
