package domain

import (
	"time"

	"github.com/google/uuid"
)

// RequestLog is an append-only record of one successful delivery. Downstream
// billing reads these records; the engine only ever writes them, exactly
// once per delivery. PriceCents snapshots the content's price at delivery
// time so later price changes do not rewrite history.
type RequestLog struct {
	ID         int64     `json:"id"`
	ContentID  uuid.UUID `json:"content_id"`
	Source     string    `json:"source"`
	PriceCents int64     `json:"price_cents"`
	CreatedAt  time.Time `json:"created_at"`
}
