package types

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Task board columns.
const (
	TaskBacklog = "backlog"
	TaskTodo    = "todo"
	TaskDoing   = "doing"
	TaskReview  = "review"
	TaskDone    = "done"
)

// TaskStatuses lists the task board columns in board order.
var TaskStatuses = []string{TaskBacklog, TaskTodo, TaskDoing, TaskReview, TaskDone}

var validTaskStatuses = map[string]bool{
	TaskBacklog: true,
	TaskTodo:    true,
	TaskDoing:   true,
	TaskReview:  true,
	TaskDone:    true,
}

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Task is a work item on the project board.
type Task struct {
	Record
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Assignee    string     `json:"assignee"`
	Project     string     `json:"project"`
	Priority    string     `json:"priority"`
	DueAt       *time.Time `json:"due_at,omitempty"`
}

func (t *Task) Scope() string { return t.Status }

// SetScope moves the task to another board column.
func (t *Task) SetScope(scope string) error {
	if !validTaskStatuses[scope] {
		return ErrInvalidScope
	}
	t.Status = scope
	return nil
}

// Validate checks the task is complete enough to commit.
func (t *Task) Validate() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.Title, validation.Required),
		validation.Field(&t.Status, validation.Required, validation.By(validScopeRule(validTaskStatuses))),
		validation.Field(&t.Priority,
			validation.In(PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent)),
	)
}

func (t *Task) Clone() Entity {
	cp := *t
	if t.DueAt != nil {
		due := *t.DueAt
		cp.DueAt = &due
	}
	return &cp
}
