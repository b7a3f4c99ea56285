package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validation errors for campaign and content creation.
var (
	ErrEmptyAudienceCategory = errors.New("audience category has no tags")
	ErrUnknownAudienceTag    = errors.New("unknown audience tag")
	ErrInvalidPayload        = errors.New("payload must be exactly one of image or text")
	ErrNegativeQuota         = errors.New("quota must not be negative")
	ErrNegativePrice         = errors.New("price must not be negative")
	ErrUnknownFormat         = errors.New("unknown content format")
)

// ContentFormat is the physical size and shape of an ad slot. A request and
// a content must match on format exactly.
type ContentFormat string

const (
	FormatLeaderboard ContentFormat = "leaderboard"
	FormatSkyscraper  ContentFormat = "skyscraper"
	FormatBanner      ContentFormat = "banner"
	FormatRectangle   ContentFormat = "rectangle"
)

// ParseContentFormat converts a wire value into a ContentFormat.
func ParseContentFormat(s string) (ContentFormat, error) {
	switch ContentFormat(s) {
	case FormatLeaderboard, FormatSkyscraper, FormatBanner, FormatRectangle:
		return ContentFormat(s), nil
	}
	return "", ErrUnknownFormat
}

type PayloadKind string

const (
	PayloadImage PayloadKind = "image"
	PayloadText  PayloadKind = "text"
)

// Payload is the creative material itself: either a hosted image or a plain
// text line, never both.
type Payload struct {
	Kind     PayloadKind `json:"kind"`
	ImageURL string      `json:"image_url,omitempty"`
	Text     string      `json:"text,omitempty"`
}

// Validate checks that exactly one payload variant is populated and that it
// matches the declared kind.
func (p Payload) Validate() error {
	switch p.Kind {
	case PayloadImage:
		if p.ImageURL == "" || p.Text != "" {
			return ErrInvalidPayload
		}
	case PayloadText:
		if p.Text == "" || p.ImageURL != "" {
			return ErrInvalidPayload
		}
	default:
		return ErrInvalidPayload
	}
	return nil
}

// Content is a single piece of creative material tied to one campaign.
// PriceCents is the price charged per delivered request, in the currency's
// smallest unit. Quota is the number of deliveries remaining; a content with
// zero quota is no longer eligible for selection.
type Content struct {
	ID         uuid.UUID     `json:"id"`
	CampaignID uuid.UUID     `json:"campaign_id"`
	Format     ContentFormat `json:"format"`
	Audience   TargetContext `json:"audience"`
	PriceCents int64         `json:"price_cents"`
	Quota      int64         `json:"quota"`
	Payload    Payload       `json:"payload"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// NewContent builds a content with a freshly generated id, enforcing the
// creation invariants. The id is assigned here so it is stable before the
// content ever reaches storage.
func NewContent(campaignID uuid.UUID, format ContentFormat, audience TargetContext, priceCents, quota int64, payload Payload) (Content, error) {
	if _, err := ParseContentFormat(string(format)); err != nil {
		return Content{}, err
	}
	if err := audience.ValidateAudience(); err != nil {
		return Content{}, err
	}
	if err := payload.Validate(); err != nil {
		return Content{}, err
	}
	if quota < 0 {
		return Content{}, ErrNegativeQuota
	}
	if priceCents < 0 {
		return Content{}, ErrNegativePrice
	}
	return Content{
		ID:         uuid.New(),
		CampaignID: campaignID,
		Format:     format,
		Audience:   audience,
		PriceCents: priceCents,
		Quota:      quota,
		Payload:    payload,
	}, nil
}
