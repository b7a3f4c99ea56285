package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"adserve/internal/core/domain"
)

// Seed inserts demo campaigns, contents and request-log records into the
// database. Intended for local development only.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	formats := []domain.ContentFormat{
		domain.FormatLeaderboard, domain.FormatSkyscraper,
		domain.FormatBanner, domain.FormatRectangle,
	}
	audiences := []domain.TargetContext{
		{
			Ages:            []domain.AgeGroup{domain.Age20s, domain.Age30s},
			Genders:         []domain.Gender{domain.GenderFemale},
			MaritalStatuses: []domain.MaritalStatus{domain.MaritalSingle},
			Purposes:        []domain.PurposeOfUse{domain.PurposePrivate},
		},
		{
			Ages:            []domain.AgeGroup{domain.Age30s, domain.Age40s, domain.Age50Plus},
			Genders:         []domain.Gender{domain.GenderMale, domain.GenderFemale},
			MaritalStatuses: []domain.MaritalStatus{domain.MaritalMarried},
			Purposes:        []domain.PurposeOfUse{domain.PurposeBusiness},
		},
		{
			Ages:            []domain.AgeGroup{domain.AgeUnder20, domain.Age20s},
			Genders:         []domain.Gender{domain.GenderMale, domain.GenderFemale, domain.GenderOther},
			MaritalStatuses: []domain.MaritalStatus{domain.MaritalSingle, domain.MaritalDivorced},
			Purposes:        []domain.PurposeOfUse{domain.PurposeEducation, domain.PurposePrivate},
		},
	}

	var contents []domain.Content
	for i := 1; i <= 5; i++ {
		campaign := domain.NewCampaign(fmt.Sprintf("Demo campaign %d", i))
		_, err := pool.Exec(ctx, `INSERT INTO campaigns (id, name, status, created_at, updated_at)
VALUES ($1,$2,$3,now(),now()) ON CONFLICT DO NOTHING`,
			campaign.ID, campaign.Name, campaign.Status)
		if err != nil {
			return err
		}

		for j := 1; j <= 4; j++ {
			payload := domain.Payload{
				Kind:     domain.PayloadImage,
				ImageURL: fmt.Sprintf("https://example.com/creative/%d-%d.png", i, j),
			}
			if j%2 == 0 {
				payload = domain.Payload{
					Kind: domain.PayloadText,
					Text: fmt.Sprintf("Demo offer %d from campaign %d", j, i),
				}
			}
			content, err := domain.NewContent(
				campaign.ID,
				formats[rand.IntN(len(formats))],
				audiences[rand.IntN(len(audiences))],
				int64(rand.IntN(20)+1), // 0.01 .. 0.20 per request
				int64(rand.IntN(900)+100),
				payload,
			)
			if err != nil {
				return err
			}
			audience, err := json.Marshal(content.Audience)
			if err != nil {
				return err
			}
			_, err = pool.Exec(ctx, `INSERT INTO contents
(id, campaign_id, format, audience, price_cents, quota, payload_kind, image_url, body_text, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,now(),now()) ON CONFLICT DO NOTHING`,
				content.ID, content.CampaignID, content.Format, audience,
				content.PriceCents, content.Quota,
				content.Payload.Kind, content.Payload.ImageURL, content.Payload.Text)
			if err != nil {
				return err
			}
			contents = append(contents, content)
		}
	}

	// historic deliveries so the stats endpoint has something to show
	for i := 0; i < 500; i++ {
		c := contents[rand.IntN(len(contents))]
		source := fmt.Sprintf("source-%d", rand.IntN(20)+1)
		createdAt := time.Now().UTC().Add(-time.Duration(rand.IntN(72)) * time.Hour)
		_, err := pool.Exec(ctx, `INSERT INTO request_log (content_id, source, price_cents, created_at)
VALUES ($1,$2,$3,$4)`, c.ID, source, c.PriceCents, createdAt)
		if err != nil {
			return err
		}
	}
	return nil
}
