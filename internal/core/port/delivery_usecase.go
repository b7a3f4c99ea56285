package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adserve/internal/core/domain"
)

// DeliveryUseCase is the primary port into the engine. Mock implementations
// can be generated from this interface for testing.
type DeliveryUseCase interface {
	// RequestContent selects the best-matching content of the format for the
	// given target context, accounts the delivery and returns it. It returns
	// ErrNoActiveContent when nothing is deliverable.
	RequestContent(ctx context.Context, req DeliveryRequest) (*DeliveryResponse, error)
	// RequestUntargetedContent picks uniformly among all active content of
	// the format, with the same accounting.
	RequestUntargetedContent(ctx context.Context, source string, format domain.ContentFormat) (*DeliveryResponse, error)

	// CreateCampaign registers a new running campaign.
	CreateCampaign(ctx context.Context, name string) (*domain.Campaign, error)
	// CancelCampaign moves a running campaign to cancelled, excluding its
	// content from selection.
	CancelCampaign(ctx context.Context, id uuid.UUID) error
	// CreateContent validates and persists a new content under an existing
	// campaign.
	CreateContent(ctx context.Context, req NewContentRequest) (*domain.Content, error)
	// DeliveryStats aggregates delivered counts and accrued price over a
	// period, optionally per campaign.
	DeliveryStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// DeliveryRequest carries one inbound content request. A zero-value Context
// means the request is untargeted.
type DeliveryRequest struct {
	Source  string
	Format  domain.ContentFormat
	Context domain.TargetContext
}

// DeliveryResponse is the selected content as returned to the caller. It is
// a DTO used by the HTTP layer and carries no domain behaviour.
type DeliveryResponse struct {
	ContentID  uuid.UUID            `json:"content_id"`
	CampaignID uuid.UUID            `json:"campaign_id"`
	Format     domain.ContentFormat `json:"format"`
	Payload    domain.Payload       `json:"payload"`
	PriceCents int64                `json:"price_cents"`
}

// NewContentRequest carries the attributes of a content to create. The id is
// generated by the engine, not supplied by the caller.
type NewContentRequest struct {
	CampaignID uuid.UUID
	Format     domain.ContentFormat
	Audience   domain.TargetContext
	PriceCents int64
	Quota      int64
	Payload    domain.Payload
}

// StatsReq bounds a delivery-stats query. A nil CampaignID aggregates across
// all campaigns.
type StatsReq struct {
	From       time.Time
	To         time.Time
	CampaignID *uuid.UUID
}

// StatsResp contains the delivered request count and the summed delivery
// price for the period, in integer currency units.
type StatsResp struct {
	Deliveries int64 `json:"deliveries"`
	PriceCents int64 `json:"price_cents"`
}
