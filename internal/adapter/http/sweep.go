package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ad-budget/internal/core/port"
	"ad-budget/internal/scheduler"
)

type sweepResponse struct {
	port.SweepReport
	Error string `json:"error,omitempty"`
}

// handleSweep runs the sweep named in the path synchronously and returns
// its report. A sweep that finished with per-record failures still returns
// the report, with HTTP 500 and the joined error text.
func (h *Handler) handleSweep(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	report, err := h.sweeps.RunNow(r.Context(), name)
	switch {
	case err == nil:
		h.writeJSON(w, http.StatusOK, sweepResponse{SweepReport: report})
	case errors.Is(err, scheduler.ErrUnknownJob):
		http.Error(w, "unknown sweep", http.StatusNotFound)
	case errors.Is(err, scheduler.ErrJobRunning):
		http.Error(w, "sweep already running", http.StatusConflict)
	default:
		h.logger.Error("manual sweep error", slog.String("sweep", name), slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, sweepResponse{SweepReport: report, Error: err.Error()})
	}
}
