package types

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// monthLayout is the key format for performance entries ("2026-08").
const monthLayout = "2006-01"

// PerformanceEntry is one month of recorded agency results, entered
// manually for the performance report alongside the derived metrics.
type PerformanceEntry struct {
	Record
	Month          string  `json:"month"`
	Revenue        float64 `json:"revenue"`
	Expenses       float64 `json:"expenses"`
	NewClients     int     `json:"new_clients"`
	ChurnedClients int     `json:"churned_clients"`
	LeadsGenerated int     `json:"leads_generated"`
}

func (p *PerformanceEntry) Scope() string { return unscoped }

func (p *PerformanceEntry) SetScope(scope string) error { return setUnscoped(scope) }

// Validate checks the entry is complete enough to commit.
func (p *PerformanceEntry) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Month, validation.Required, validation.Date(monthLayout)),
		validation.Field(&p.Revenue, validation.Min(0.0)),
		validation.Field(&p.Expenses, validation.Min(0.0)),
		validation.Field(&p.NewClients, validation.Min(0)),
		validation.Field(&p.ChurnedClients, validation.Min(0)),
		validation.Field(&p.LeadsGenerated, validation.Min(0)),
	)
}

func (p *PerformanceEntry) Clone() Entity {
	cp := *p
	return &cp
}
