package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"ad-budget/internal/core/port"
)

type spendRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

// handleSpend ingests one spend event for the campaign in the {id} path
// parameter. The amount may be a JSON string or number. On success it
// returns the SpendReceipt. Unknown campaigns produce HTTP 404, malformed
// input or an invalid amount HTTP 400, store contention that outlasted the
// retries HTTP 409 and an unreachable store HTTP 503.
func (h *Handler) handleSpend(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	var req spendRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Amount == nil {
		http.Error(w, "amount is required", http.StatusBadRequest)
		return
	}

	receipt, err := h.svc.IngestSpend(r.Context(), id, *req.Amount)
	switch {
	case err == nil:
		h.writeJSON(w, http.StatusOK, receipt)
	case errors.Is(err, port.ErrNotFound):
		http.Error(w, "campaign not found", http.StatusNotFound)
	case errors.Is(err, port.ErrInvalidAmount):
		http.Error(w, "amount must be non-negative with at most 2 decimal places", http.StatusBadRequest)
	case errors.Is(err, port.ErrStoreContention):
		h.logger.Warn("spend contention", slog.Int64("campaign_id", id), slog.Any("error", err))
		http.Error(w, "conflict, retry later", http.StatusConflict)
	case errors.Is(err, port.ErrStoreUnavailable):
		h.logger.Error("spend store unavailable", slog.Int64("campaign_id", id), slog.Any("error", err))
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
	default:
		h.logger.Error("spend error", slog.Int64("campaign_id", id), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
