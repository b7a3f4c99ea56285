package domain

import (
	"time"

	"github.com/google/uuid"
)

// CampaignStatus is the lifecycle state of a campaign. Running campaigns
// serve content; cancelled and ended are both terminal. Ended is reached
// automatically when every content of the campaign has exhausted its quota,
// cancelled only by an external actor.
type CampaignStatus string

const (
	CampaignRunning   CampaignStatus = "running"
	CampaignCancelled CampaignStatus = "cancelled"
	CampaignEnded     CampaignStatus = "ended"
)

// Campaign owns an unordered collection of Content and a lifecycle state.
type Campaign struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Status    CampaignStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewCampaign builds a running campaign with a freshly generated id.
func NewCampaign(name string) Campaign {
	return Campaign{
		ID:     uuid.New(),
		Name:   name,
		Status: CampaignRunning,
	}
}
