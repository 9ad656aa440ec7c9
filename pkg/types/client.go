package types

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Client statuses.
const (
	ClientStatusActive  = "active"
	ClientStatusPaused  = "paused"
	ClientStatusChurned = "churned"
)

// Client is a retained agency client with a monthly recurring value.
// Clients are a flat collection, not a board; they carry no scope.
type Client struct {
	Record
	Name    string  `json:"name"`
	Company string  `json:"company"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	MRR     float64 `json:"mrr"`
	Status  string  `json:"status"`
}

func (c *Client) Scope() string { return unscoped }

func (c *Client) SetScope(scope string) error { return setUnscoped(scope) }

// Validate checks the client is complete enough to commit.
func (c *Client) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Email, is.Email),
		validation.Field(&c.MRR, validation.Min(0.0)),
		validation.Field(&c.Status, validation.Required,
			validation.In(ClientStatusActive, ClientStatusPaused, ClientStatusChurned)),
	)
}

func (c *Client) Clone() Entity {
	cp := *c
	return &cp
}

// Active reports whether the client counts toward current stock metrics.
func (c *Client) Active() bool {
	return !c.Archived && c.Status == ClientStatusActive
}
