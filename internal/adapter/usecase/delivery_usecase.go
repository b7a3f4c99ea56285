package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"adserve/internal/core/domain"
	"adserve/internal/core/port"
)

// Options tune the accounting path of the engine. Zero values fall back to
// the defaults below.
type Options struct {
	// MaxDeliveryAttempts bounds how often a request is retried against
	// fallback selection after losing a quota race.
	MaxDeliveryAttempts int
	// AccountingTimeout bounds how long one accounting step may block on the
	// storage layer before the delivery fails as retryable.
	AccountingTimeout time.Duration
}

const (
	defaultMaxDeliveryAttempts = 3
	defaultAccountingTimeout   = 2 * time.Second
)

// DeliveryUseCase implements the content selection and accounting engine.
// Selection is read-only and runs unsynchronized; all mutation goes through
// the repository's atomic operations, so the engine itself holds no state
// between calls.
type DeliveryUseCase struct {
	repo   port.ContentRepository
	logger *slog.Logger

	maxAttempts       int
	accountingTimeout time.Duration
}

// NewDeliveryUseCase creates the engine around a repository.
func NewDeliveryUseCase(repo port.ContentRepository, logger *slog.Logger, opts Options) *DeliveryUseCase {
	if opts.MaxDeliveryAttempts <= 0 {
		opts.MaxDeliveryAttempts = defaultMaxDeliveryAttempts
	}
	if opts.AccountingTimeout <= 0 {
		opts.AccountingTimeout = defaultAccountingTimeout
	}
	return &DeliveryUseCase{
		repo:              repo,
		logger:            logger,
		maxAttempts:       opts.MaxDeliveryAttempts,
		accountingTimeout: opts.AccountingTimeout,
	}
}

// RequestContent selects and accounts one delivery for a targeted request.
// A fully unrestricted context weighs every candidate at zero, which makes
// this behave exactly like RequestUntargetedContent.
func (u *DeliveryUseCase) RequestContent(ctx context.Context, req port.DeliveryRequest) (*port.DeliveryResponse, error) {
	return u.deliver(ctx, req.Source, req.Format, req.Context)
}

// RequestUntargetedContent selects uniformly among active content of the
// format and accounts the delivery.
func (u *DeliveryUseCase) RequestUntargetedContent(ctx context.Context, source string, format domain.ContentFormat) (*port.DeliveryResponse, error) {
	return u.deliver(ctx, source, format, domain.TargetContext{})
}

// deliver runs the selection loop. The first attempt auctions the targeted
// candidates; when the auction yields nothing, and on every retry after a
// lost quota race, selection falls back to a uniform pick over a fresh view
// of the active content.
func (u *DeliveryUseCase) deliver(ctx context.Context, source string, format domain.ContentFormat, tctx domain.TargetContext) (*port.DeliveryResponse, error) {
	if _, err := domain.ParseContentFormat(string(format)); err != nil {
		return nil, err
	}
	for attempt := 0; attempt < u.maxAttempts; attempt++ {
		active, err := u.repo.FindActiveContent(ctx, format)
		if err != nil {
			return nil, err
		}
		if len(active) == 0 {
			return nil, port.ErrNoActiveContent
		}

		var chosen *domain.Content
		if attempt == 0 {
			candidates := make([]domain.MatchResult, 0, len(active))
			for _, c := range active {
				if m, ok := domain.Match(tctx, c); ok {
					candidates = append(candidates, m)
				}
			}
			if w := selectWinner(candidates); w != nil {
				chosen = &w.Content
			}
		}
		if chosen == nil {
			chosen = pickUniform(active)
		}

		resp, err := u.account(ctx, chosen.ID, source)
		if errors.Is(err, port.ErrQuotaRaced) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return resp, nil
	}
	return nil, fmt.Errorf("delivery contended after %d attempts: %w", u.maxAttempts, port.ErrGatewayUnavailable)
}

// account performs the bookkeeping for one resolved selection: re-validate
// the content against the live row, take one quota unit, append the request
// log and, on the boundary transition to zero, run the lifecycle check.
// The stored row, not the view cached during selection, decides whether the
// content is still deliverable.
func (u *DeliveryUseCase) account(ctx context.Context, contentID uuid.UUID, source string) (*port.DeliveryResponse, error) {
	actx, cancel := context.WithTimeout(ctx, u.accountingTimeout)
	defer cancel()

	content, err := u.repo.LoadContent(actx, contentID)
	if err != nil {
		if errors.Is(err, port.ErrContentNotFound) {
			return nil, port.ErrQuotaRaced
		}
		return nil, err
	}
	if content.Quota <= 0 {
		return nil, port.ErrQuotaRaced
	}

	remaining, err := u.repo.DecrementQuota(actx, contentID)
	if err != nil {
		return nil, err
	}
	if remaining < 0 {
		u.logger.Error("quota underflow",
			slog.String("content_id", contentID.String()),
			slog.Int64("remaining", remaining))
		return nil, fmt.Errorf("%w: quota below zero for content %s", port.ErrInvariantViolation, contentID)
	}

	entry := &domain.RequestLog{
		ContentID:  contentID,
		Source:     source,
		PriceCents: content.PriceCents,
	}
	if err = u.repo.AppendRequestLog(actx, entry); err != nil {
		// the delivery stands; billing reconciles from its side
		u.logger.Error("request log append failed",
			slog.String("content_id", contentID.String()),
			slog.Any("error", err))
	}

	if remaining == 0 {
		u.onContentExhausted(ctx, content.CampaignID)
	}

	return &port.DeliveryResponse{
		ContentID:  content.ID,
		CampaignID: content.CampaignID,
		Format:     content.Format,
		Payload:    content.Payload,
		PriceCents: content.PriceCents,
	}, nil
}

// onContentExhausted scans the campaign's content and ends the campaign
// once every quota is spent. The guarded repository transition makes this
// idempotent; the ended log line fires only for the call that actually
// changed the row.
func (u *DeliveryUseCase) onContentExhausted(ctx context.Context, campaignID uuid.UUID) {
	contents, err := u.repo.FindCampaignContent(ctx, campaignID)
	if err != nil {
		u.logger.Error("campaign scan failed",
			slog.String("campaign_id", campaignID.String()),
			slog.Any("error", err))
		return
	}
	for _, c := range contents {
		if c.Quota > 0 {
			return
		}
	}
	changed, err := u.repo.TransitionCampaign(ctx, campaignID, domain.CampaignRunning, domain.CampaignEnded)
	if err != nil {
		u.logger.Error("campaign transition failed",
			slog.String("campaign_id", campaignID.String()),
			slog.Any("error", err))
		return
	}
	if changed {
		u.logger.Info("campaign ended", slog.String("campaign_id", campaignID.String()))
	}
}

// CreateCampaign registers a new running campaign.
func (u *DeliveryUseCase) CreateCampaign(ctx context.Context, name string) (*domain.Campaign, error) {
	if name == "" {
		return nil, errors.New("campaign name must not be empty")
	}
	c := domain.NewCampaign(name)
	if err := u.repo.CreateCampaign(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// CancelCampaign moves a running campaign to cancelled. Cancelling a
// campaign that is already terminal is reported as not found to the caller.
func (u *DeliveryUseCase) CancelCampaign(ctx context.Context, id uuid.UUID) error {
	changed, err := u.repo.TransitionCampaign(ctx, id, domain.CampaignRunning, domain.CampaignCancelled)
	if err != nil {
		return err
	}
	if !changed {
		return port.ErrCampaignNotFound
	}
	return nil
}

// CreateContent validates and persists a new content under an existing
// running campaign.
func (u *DeliveryUseCase) CreateContent(ctx context.Context, req port.NewContentRequest) (*domain.Content, error) {
	campaign, err := u.repo.GetCampaign(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign.Status != domain.CampaignRunning {
		return nil, fmt.Errorf("campaign %s is %s, not running", campaign.ID, campaign.Status)
	}
	c, err := domain.NewContent(req.CampaignID, req.Format, req.Audience, req.PriceCents, req.Quota, req.Payload)
	if err != nil {
		return nil, err
	}
	if err = u.repo.CreateContent(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// DeliveryStats aggregates delivered counts and accrued price for a period.
func (u *DeliveryUseCase) DeliveryStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return u.repo.DeliveryStats(ctx, req)
}
