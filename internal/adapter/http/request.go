package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"adserve/internal/core/domain"
	"adserve/internal/core/port"
)

// deliveryRequestDTO is the wire form of a content request. The context
// object is optional; an absent context and one with all-empty categories
// both mean an unrestricted request.
type deliveryRequestDTO struct {
	Source  string                `json:"source"`
	Format  string                `json:"format"`
	Context *domain.TargetContext `json:"context,omitempty"`
}

// handleContentRequest serves the targeted delivery endpoint. On success it
// returns the selected content as JSON. An empty pool yields HTTP 404, a
// storage outage HTTP 503, parsing errors HTTP 400.
func (h *Handler) handleContentRequest(w http.ResponseWriter, r *http.Request) {
	var dto deliveryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	source, format, ok := h.validateDelivery(w, dto)
	if !ok {
		return
	}
	req := port.DeliveryRequest{Source: source, Format: format}
	if dto.Context != nil {
		req.Context = *dto.Context
	}
	resp, err := h.svc.RequestContent(r.Context(), req)
	h.writeDelivery(w, resp, err)
}

// handleUntargetedRequest serves the "give me anything of this format"
// endpoint; it shares response semantics with handleContentRequest.
func (h *Handler) handleUntargetedRequest(w http.ResponseWriter, r *http.Request) {
	var dto deliveryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	source, format, ok := h.validateDelivery(w, dto)
	if !ok {
		return
	}
	resp, err := h.svc.RequestUntargetedContent(r.Context(), source, format)
	h.writeDelivery(w, resp, err)
}

func (h *Handler) validateDelivery(w http.ResponseWriter, dto deliveryRequestDTO) (string, domain.ContentFormat, bool) {
	if dto.Source == "" {
		http.Error(w, "missing source", http.StatusBadRequest)
		return "", "", false
	}
	format, err := domain.ParseContentFormat(dto.Format)
	if err != nil {
		http.Error(w, "unknown format", http.StatusBadRequest)
		return "", "", false
	}
	if !h.allowSource(dto.Source) {
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
		return "", "", false
	}
	return dto.Source, format, true
}

func (h *Handler) writeDelivery(w http.ResponseWriter, resp *port.DeliveryResponse, err error) {
	switch {
	case errors.Is(err, port.ErrNoActiveContent):
		http.Error(w, "no content available", http.StatusNotFound)
	case errors.Is(err, port.ErrGatewayUnavailable):
		h.logger.Error("delivery failed, retryable", slog.Any("error", err))
		w.Header().Set("Retry-After", "1")
		http.Error(w, "temporarily unavailable", http.StatusServiceUnavailable)
	case err != nil:
		h.logger.Error("delivery failed", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		writeJSON(w, h.logger, http.StatusOK, resp)
	}
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		logger.Error("encode response error", slog.Any("error", err))
	}
}
