package types

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Content calendar columns.
const (
	ContentIdea      = "idea"
	ContentDraft     = "draft"
	ContentApproved  = "approved"
	ContentScheduled = "scheduled"
	ContentPublished = "published"
)

// ContentStatuses lists the calendar columns in board order.
var ContentStatuses = []string{
	ContentIdea, ContentDraft, ContentApproved, ContentScheduled, ContentPublished,
}

var validContentStatuses = map[string]bool{
	ContentIdea:      true,
	ContentDraft:     true,
	ContentApproved:  true,
	ContentScheduled: true,
	ContentPublished: true,
}

// ContentItem is a piece on the content calendar board.
type ContentItem struct {
	Record
	Title     string     `json:"title"`
	Channel   string     `json:"channel"`
	Status    string     `json:"status"`
	ClientID  string     `json:"client_id"`
	PublishAt *time.Time `json:"publish_at,omitempty"`
}

func (c *ContentItem) Scope() string { return c.Status }

// SetScope moves the item to another calendar column.
func (c *ContentItem) SetScope(scope string) error {
	if !validContentStatuses[scope] {
		return ErrInvalidScope
	}
	c.Status = scope
	return nil
}

// Validate checks the item is complete enough to commit.
func (c *ContentItem) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.Status, validation.Required, validation.By(validScopeRule(validContentStatuses))),
	)
}

func (c *ContentItem) Clone() Entity {
	cp := *c
	if c.PublishAt != nil {
		at := *c.PublishAt
		cp.PublishAt = &at
	}
	return &cp
}

// PublishedAt returns the timestamp used by publication flow metrics:
// the scheduled publish time when set, otherwise the creation time.
func (c *ContentItem) PublishedAt() time.Time {
	if c.PublishAt != nil {
		return *c.PublishAt
	}
	return c.CreatedAt
}
