package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullAudience() TargetContext {
	return TargetContext{
		Ages:            []AgeGroup{Age20s},
		Genders:         []Gender{GenderFemale},
		MaritalStatuses: []MaritalStatus{MaritalSingle},
		Purposes:        []PurposeOfUse{PurposePrivate},
	}
}

func TestNewContentAssignsStableID(t *testing.T) {
	c, err := NewContent(uuid.New(), FormatBanner, fullAudience(), 10, 100, Payload{
		Kind: PayloadImage, ImageURL: "https://example.com/a.png",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, c.ID, "id is generated at creation, before persistence")
}

func TestNewContentRejectsEmptyAudienceCategory(t *testing.T) {
	audience := fullAudience()
	audience.Purposes = nil
	_, err := NewContent(uuid.New(), FormatBanner, audience, 10, 100, Payload{
		Kind: PayloadText, Text: "x",
	})
	assert.ErrorIs(t, err, ErrEmptyAudienceCategory)
}

func TestNewContentRejectsUnknownTag(t *testing.T) {
	audience := fullAudience()
	audience.Genders = []Gender{"robot"}
	_, err := NewContent(uuid.New(), FormatBanner, audience, 10, 100, Payload{
		Kind: PayloadText, Text: "x",
	})
	assert.ErrorIs(t, err, ErrUnknownAudienceTag)
}

func TestNewContentRejectsNegativeQuotaAndPrice(t *testing.T) {
	_, err := NewContent(uuid.New(), FormatBanner, fullAudience(), 10, -1, Payload{
		Kind: PayloadText, Text: "x",
	})
	assert.ErrorIs(t, err, ErrNegativeQuota)

	_, err = NewContent(uuid.New(), FormatBanner, fullAudience(), -10, 1, Payload{
		Kind: PayloadText, Text: "x",
	})
	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestPayloadValidate(t *testing.T) {
	assert.NoError(t, Payload{Kind: PayloadImage, ImageURL: "https://example.com/a.png"}.Validate())
	assert.NoError(t, Payload{Kind: PayloadText, Text: "buy now"}.Validate())

	assert.ErrorIs(t, Payload{Kind: PayloadImage}.Validate(), ErrInvalidPayload)
	assert.ErrorIs(t, Payload{Kind: PayloadText, Text: "x", ImageURL: "y"}.Validate(), ErrInvalidPayload)
	assert.ErrorIs(t, Payload{Kind: "video", Text: "x"}.Validate(), ErrInvalidPayload)
}

func TestParseContentFormat(t *testing.T) {
	f, err := ParseContentFormat("leaderboard")
	require.NoError(t, err)
	assert.Equal(t, FormatLeaderboard, f)

	_, err = ParseContentFormat("popup")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
