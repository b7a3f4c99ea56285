package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adserve/internal/core/domain"
	"adserve/internal/core/port"
)

// handleCreateCampaign registers a new running campaign. Returns HTTP 201
// with the created campaign.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var dto struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	campaign, err := h.svc.CreateCampaign(r.Context(), dto.Name)
	if err != nil {
		h.writeAdminError(w, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, campaign)
}

// handleCancelCampaign moves a running campaign to cancelled. A campaign
// that does not exist or is already terminal yields HTTP 404.
func (h *Handler) handleCancelCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	if err = h.svc.CancelCampaign(r.Context(), id); err != nil {
		h.writeAdminError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// newContentDTO is the wire form for content creation.
type newContentDTO struct {
	CampaignID string               `json:"campaign_id"`
	Format     string               `json:"format"`
	Audience   domain.TargetContext `json:"audience"`
	PriceCents int64                `json:"price_cents"`
	Quota      int64                `json:"quota"`
	Payload    domain.Payload       `json:"payload"`
}

// handleCreateContent validates and persists a new content under an
// existing running campaign. Domain validation failures yield HTTP 400, an
// unknown campaign HTTP 404.
func (h *Handler) handleCreateContent(w http.ResponseWriter, r *http.Request) {
	var dto newContentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	campaignID, err := uuid.Parse(dto.CampaignID)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	content, err := h.svc.CreateContent(r.Context(), port.NewContentRequest{
		CampaignID: campaignID,
		Format:     domain.ContentFormat(dto.Format),
		Audience:   dto.Audience,
		PriceCents: dto.PriceCents,
		Quota:      dto.Quota,
		Payload:    dto.Payload,
	})
	if err != nil {
		h.writeAdminError(w, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, content)
}

func (h *Handler) writeAdminError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrCampaignNotFound):
		http.Error(w, "campaign not found", http.StatusNotFound)
	case errors.Is(err, port.ErrGatewayUnavailable):
		h.logger.Error("admin operation failed, retryable", slog.Any("error", err))
		http.Error(w, "temporarily unavailable", http.StatusServiceUnavailable)
	case err != nil:
		// domain validation errors land here
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}
