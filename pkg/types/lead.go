package types

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Pipeline stages. A lead moves across these columns on the CRM board.
// Stage keys keep the pt-BR names the dashboard renders.
const (
	StageProspect   = "prospect"
	StageContact    = "contato"
	StageQualifying = "qualificacao"
	StageProposal   = "proposta"
	StageClosedWon  = "fechado"
	StageClosedLost = "perdido"
)

// Stages lists the pipeline columns in board order.
var Stages = []string{
	StageProspect,
	StageContact,
	StageQualifying,
	StageProposal,
	StageClosedWon,
	StageClosedLost,
}

var validStages = map[string]bool{
	StageProspect:   true,
	StageContact:    true,
	StageQualifying: true,
	StageProposal:   true,
	StageClosedWon:  true,
	StageClosedLost: true,
}

// Lead is a prospect moving through the CRM pipeline board.
type Lead struct {
	Record
	Name           string  `json:"name"`
	Company        string  `json:"company"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Stage          string  `json:"stage"`
	EstimatedValue float64 `json:"estimated_value"`
	Source         string  `json:"source"`
}

func (l *Lead) Scope() string { return l.Stage }

// SetScope moves the lead to another pipeline stage.
func (l *Lead) SetScope(scope string) error {
	if !validStages[scope] {
		return ErrInvalidScope
	}
	l.Stage = scope
	return nil
}

// Validate checks the lead is complete enough to commit.
func (l *Lead) Validate() error {
	return validation.ValidateStruct(l,
		validation.Field(&l.Name, validation.Required),
		validation.Field(&l.Email, is.Email),
		validation.Field(&l.Stage, validation.Required, validation.By(validScopeRule(validStages))),
		validation.Field(&l.EstimatedValue, validation.Min(0.0)),
	)
}

func (l *Lead) Clone() Entity {
	cp := *l
	return &cp
}

// Open reports whether the lead still counts toward pipeline value.
func (l *Lead) Open() bool {
	return !l.Archived && l.Stage != StageClosedWon && l.Stage != StageClosedLost
}

// validScopeRule adapts a scope-key set to an ozzo validation rule.
func validScopeRule(valid map[string]bool) func(any) error {
	return func(value any) error {
		s, _ := value.(string)
		if !valid[s] {
			return ErrInvalidScope
		}
		return nil
	}
}
