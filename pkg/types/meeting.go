package types

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Meeting is an agenda entry: a scheduled session with attendees and
// discussion points. Meetings are a flat, date-driven collection.
type Meeting struct {
	Record
	Title       string    `json:"title"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Attendees   []string  `json:"attendees,omitempty"`
	Agenda      []string  `json:"agenda,omitempty"`
	Notes       string    `json:"notes"`
}

func (m *Meeting) Scope() string { return unscoped }

func (m *Meeting) SetScope(scope string) error { return setUnscoped(scope) }

// Validate checks the meeting is complete enough to commit.
func (m *Meeting) Validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Title, validation.Required),
		validation.Field(&m.ScheduledAt, validation.Required),
	)
}

func (m *Meeting) Clone() Entity {
	cp := *m
	cp.Attendees = append([]string(nil), m.Attendees...)
	cp.Agenda = append([]string(nil), m.Agenda...)
	return &cp
}
