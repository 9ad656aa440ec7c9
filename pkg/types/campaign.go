package types

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Campaign board columns.
const (
	CampaignPlanning = "planning"
	CampaignActive   = "active"
	CampaignPaused   = "paused"
	CampaignDone     = "done"
)

// CampaignStatuses lists the campaign board columns in board order.
var CampaignStatuses = []string{
	CampaignPlanning, CampaignActive, CampaignPaused, CampaignDone,
}

var validCampaignStatuses = map[string]bool{
	CampaignPlanning: true,
	CampaignActive:   true,
	CampaignPaused:   true,
	CampaignDone:     true,
}

// Campaign is a client campaign with a budget and a lifecycle column.
type Campaign struct {
	Record
	Name     string     `json:"name"`
	ClientID string     `json:"client_id"`
	Status   string     `json:"status"`
	Budget   float64    `json:"budget"`
	StartAt  *time.Time `json:"start_at,omitempty"`
	EndAt    *time.Time `json:"end_at,omitempty"`
}

func (c *Campaign) Scope() string { return c.Status }

// SetScope moves the campaign to another board column.
func (c *Campaign) SetScope(scope string) error {
	if !validCampaignStatuses[scope] {
		return ErrInvalidScope
	}
	c.Status = scope
	return nil
}

// Validate checks the campaign is complete enough to commit.
func (c *Campaign) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Status, validation.Required, validation.By(validScopeRule(validCampaignStatuses))),
		validation.Field(&c.Budget, validation.Min(0.0)),
	)
}

func (c *Campaign) Clone() Entity {
	cp := *c
	if c.StartAt != nil {
		at := *c.StartAt
		cp.StartAt = &at
	}
	if c.EndAt != nil {
		at := *c.EndAt
		cp.EndAt = &at
	}
	return &cp
}
