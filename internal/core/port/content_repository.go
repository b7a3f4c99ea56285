package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"adserve/internal/core/domain"
)

var (
	// ErrNoActiveContent means nothing is deliverable for the requested
	// format anywhere in the system.
	ErrNoActiveContent = errors.New("no active content for format")
	// ErrQuotaRaced means a concurrent delivery consumed the content's last
	// quota unit first. Callers retry fallback selection; it is never
	// surfaced to the requester.
	ErrQuotaRaced = errors.New("content quota already exhausted")
	// ErrGatewayUnavailable wraps backing-store failures. Deliveries that
	// hit it fail as retryable, never as partial successes.
	ErrGatewayUnavailable = errors.New("content store unavailable")
	// ErrInvariantViolation marks a state the engine must never reach, such
	// as a negative quota. Fatal to the single request, not the process.
	ErrInvariantViolation = errors.New("invariant violation")

	ErrCampaignNotFound = errors.New("campaign not found")
	ErrContentNotFound  = errors.New("content not found")
)

// ContentRepository is the persistence gateway consumed by the selection
// engine. It is an outbound port; implementations must make DecrementQuota
// and TransitionCampaign atomic with respect to concurrent callers.
type ContentRepository interface {
	// FindActiveContent returns all content of the format with quota > 0
	// whose campaign is running. The view may be stale; accounting
	// re-validates against the live row.
	FindActiveContent(ctx context.Context, format domain.ContentFormat) ([]domain.Content, error)
	// LoadContent fetches a single content by id, ErrContentNotFound when
	// absent.
	LoadContent(ctx context.Context, id uuid.UUID) (*domain.Content, error)
	// FindCampaignContent returns every content owned by the campaign,
	// regardless of quota or status.
	FindCampaignContent(ctx context.Context, campaignID uuid.UUID) ([]domain.Content, error)
	// DecrementQuota atomically takes one delivery unit from the content and
	// returns the remaining quota. It returns ErrQuotaRaced when the quota
	// was already zero, so the quota can never underflow.
	DecrementQuota(ctx context.Context, id uuid.UUID) (remaining int64, err error)
	// AppendRequestLog durably appends one delivery record.
	AppendRequestLog(ctx context.Context, entry *domain.RequestLog) error
	// TransitionCampaign moves a campaign from one status to another and
	// reports whether the row actually changed. Calling it when the
	// campaign is no longer in the from status is a no-op returning false.
	TransitionCampaign(ctx context.Context, id uuid.UUID, from, to domain.CampaignStatus) (bool, error)

	// CreateCampaign and CreateContent persist entities built by the domain
	// constructors; ids are assigned before the call.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	CreateContent(ctx context.Context, c *domain.Content) error
	// GetCampaign fetches a campaign by id, ErrCampaignNotFound when absent.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// DeliveryStats aggregates request-log records for a period.
	DeliveryStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}
