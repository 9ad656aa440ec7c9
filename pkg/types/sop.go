package types

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SOPItem is a standard-operating-procedure document. SOPs are grouped
// and ordered by category; categories are free-form, created by use.
type SOPItem struct {
	Record
	Title    string `json:"title"`
	Category string `json:"category"`
	Body     string `json:"body"`
}

func (s *SOPItem) Scope() string { return s.Category }

// SetScope moves the document to another category. Any non-empty
// category is valid; the library grid creates categories on first use.
func (s *SOPItem) SetScope(scope string) error {
	if scope == "" {
		return ErrInvalidScope
	}
	s.Category = scope
	return nil
}

// Validate checks the document is complete enough to commit.
func (s *SOPItem) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Title, validation.Required),
		validation.Field(&s.Category, validation.Required),
	)
}

func (s *SOPItem) Clone() Entity {
	cp := *s
	return &cp
}
