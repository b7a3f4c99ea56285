package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adserve/internal/core/domain"
	"adserve/internal/core/port"
)

// ContentRepository implements port.ContentRepository using pgxpool for
// PostgreSQL. Quota decrements and campaign transitions are single guarded
// UPDATE statements, so each is atomic without explicit locking.
type ContentRepository struct {
	pool *pgxpool.Pool
}

// NewContentRepository returns a new repository instance.
func NewContentRepository(pool *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{pool: pool}
}

const contentColumns = `c.id, c.campaign_id, c.format, c.audience, c.price_cents, c.quota,
        c.payload_kind, c.image_url, c.body_text, c.created_at, c.updated_at`

// FindActiveContent returns deliverable content of the format: quota still
// available and owning campaign running.
func (r *ContentRepository) FindActiveContent(ctx context.Context, format domain.ContentFormat) ([]domain.Content, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
        SELECT %s
        FROM contents c
        JOIN campaigns cp ON cp.id = c.campaign_id
        WHERE c.format = $1 AND c.quota > 0 AND cp.status = $2`, contentColumns),
		format, domain.CampaignRunning)
	if err != nil {
		return nil, gatewayErr(err)
	}
	contents, err := pgx.CollectRows(rows, scanContent)
	if err != nil {
		return nil, gatewayErr(err)
	}
	return contents, nil
}

// LoadContent fetches a single content by id.
func (r *ContentRepository) LoadContent(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`SELECT %s FROM contents c WHERE c.id = $1`, contentColumns), id)
	if err != nil {
		return nil, gatewayErr(err)
	}
	c, err := pgx.CollectOneRow(rows, scanContent)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrContentNotFound
	}
	if err != nil {
		return nil, gatewayErr(err)
	}
	return &c, nil
}

// FindCampaignContent returns every content owned by the campaign.
func (r *ContentRepository) FindCampaignContent(ctx context.Context, campaignID uuid.UUID) ([]domain.Content, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`SELECT %s FROM contents c WHERE c.campaign_id = $1`, contentColumns), campaignID)
	if err != nil {
		return nil, gatewayErr(err)
	}
	contents, err := pgx.CollectRows(rows, scanContent)
	if err != nil {
		return nil, gatewayErr(err)
	}
	return contents, nil
}

// DecrementQuota takes one delivery unit from the content. The WHERE guard
// makes concurrent decrements linearizable: the row update only applies
// while quota is positive and the campaign still runs, so the quota can
// never underflow. No matching row means a concurrent delivery got there
// first (or the campaign left the running state) and is reported as a lost
// race.
func (r *ContentRepository) DecrementQuota(ctx context.Context, id uuid.UUID) (int64, error) {
	var remaining int64
	err := r.pool.QueryRow(ctx, `
        UPDATE contents c
        SET quota = c.quota - 1, updated_at = now()
        WHERE c.id = $1 AND c.quota > 0
          AND EXISTS (SELECT 1 FROM campaigns cp WHERE cp.id = c.campaign_id AND cp.status = $2)
        RETURNING c.quota`, id, domain.CampaignRunning).Scan(&remaining)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, port.ErrQuotaRaced
	}
	if err != nil {
		return 0, gatewayErr(err)
	}
	return remaining, nil
}

// AppendRequestLog durably appends one delivery record.
func (r *ContentRepository) AppendRequestLog(ctx context.Context, entry *domain.RequestLog) error {
	entry.CreatedAt = time.Now().UTC()
	err := r.pool.QueryRow(ctx, `
        INSERT INTO request_log (content_id, source, price_cents, created_at)
        VALUES ($1, $2, $3, $4) RETURNING id`,
		entry.ContentID, entry.Source, entry.PriceCents, entry.CreatedAt).Scan(&entry.ID)
	if err != nil {
		return gatewayErr(err)
	}
	return nil
}

// TransitionCampaign moves a campaign between statuses. The from-status
// guard makes the transition idempotent and exclusive: of two concurrent
// callers only one observes a changed row.
func (r *ContentRepository) TransitionCampaign(ctx context.Context, id uuid.UUID, from, to domain.CampaignStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns SET status = $3, updated_at = now()
        WHERE id = $1 AND status = $2`, id, from, to)
	if err != nil {
		return false, gatewayErr(err)
	}
	return tag.RowsAffected() == 1, nil
}

// CreateCampaign persists a new campaign.
func (r *ContentRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO campaigns (id, name, status, created_at, updated_at)
        VALUES ($1, $2, $3, now(), now()) RETURNING created_at, updated_at`,
		c.ID, c.Name, c.Status).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return gatewayErr(err)
	}
	return nil
}

// CreateContent persists a new content. The audience is stored as JSONB.
func (r *ContentRepository) CreateContent(ctx context.Context, c *domain.Content) error {
	audience, err := json.Marshal(c.Audience)
	if err != nil {
		return err
	}
	err = r.pool.QueryRow(ctx, `
        INSERT INTO contents (id, campaign_id, format, audience, price_cents, quota,
                              payload_kind, image_url, body_text, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
        RETURNING created_at, updated_at`,
		c.ID, c.CampaignID, c.Format, audience, c.PriceCents, c.Quota,
		c.Payload.Kind, c.Payload.ImageURL, c.Payload.Text).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return gatewayErr(err)
	}
	return nil
}

// GetCampaign fetches a campaign by id.
func (r *ContentRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx, `
        SELECT id, name, status, created_at, updated_at FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCampaignNotFound
	}
	if err != nil {
		return nil, gatewayErr(err)
	}
	return &c, nil
}

// DeliveryStats aggregates request-log rows for a period.
func (r *ContentRepository) DeliveryStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []any{req.From, req.To}
	whereCampaign := ""
	if req.CampaignID != nil {
		whereCampaign = "AND c.campaign_id = $3"
		args = append(args, *req.CampaignID)
	}
	query := fmt.Sprintf(`
        SELECT COALESCE(count(*), 0), COALESCE(sum(l.price_cents), 0)
        FROM request_log l
        JOIN contents c ON c.id = l.content_id
        WHERE l.created_at >= $1 AND l.created_at <= $2 %s`, whereCampaign)
	var resp port.StatsResp
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&resp.Deliveries, &resp.PriceCents); err != nil {
		return nil, gatewayErr(err)
	}
	return &resp, nil
}

// scanContent maps one joined row onto a domain.Content, decoding the JSONB
// audience column.
func scanContent(row pgx.CollectableRow) (domain.Content, error) {
	var (
		c        domain.Content
		audience []byte
	)
	err := row.Scan(
		&c.ID,
		&c.CampaignID,
		&c.Format,
		&audience,
		&c.PriceCents,
		&c.Quota,
		&c.Payload.Kind,
		&c.Payload.ImageURL,
		&c.Payload.Text,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	if err = json.Unmarshal(audience, &c.Audience); err != nil {
		return c, fmt.Errorf("decode audience: %w", err)
	}
	return c, nil
}

// gatewayErr tags storage failures so callers can treat them as retryable
// service errors.
func gatewayErr(err error) error {
	return fmt.Errorf("%w: %v", port.ErrGatewayUnavailable, err)
}
