package types

import (
	"errors"
	"time"
)

// Record holds the bookkeeping fields every opsdeck entity carries.
// ID and CreatedAt are assigned once by the store and never change.
// Position orders the record among active members of its scope.
type Record struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Position  int       `json:"position"`
	Archived  bool      `json:"archived"`
}

// Meta returns the record's bookkeeping fields. Embedding Record in an
// entity struct satisfies this part of the Entity interface.
func (r *Record) Meta() *Record {
	return r
}

// Entity is implemented by every record kind held in a store collection.
type Entity interface {
	// Meta returns the record's bookkeeping fields for in-place update.
	Meta() *Record

	// Scope returns the grouping key (kanban column, SOP category) within
	// which Position is ordered. Kinds without board grouping return "".
	Scope() string

	// SetScope moves the record to another grouping key.
	// Returns ErrInvalidScope if the key is not valid for the kind.
	SetScope(scope string) error

	// Validate reports whether the record is complete enough to commit.
	// Collections reject drafts that fail validation at Add and Update.
	Validate() error

	// Clone returns a deep copy. Collections hand out clones so callers
	// cannot mutate stored records except through store operations.
	Clone() Entity
}

// Record operation errors.
var (
	ErrNotFound       = errors.New("record not found")
	ErrInvalidID      = errors.New("invalid record ID")
	ErrInvalidData    = errors.New("invalid record data")
	ErrInvalidScope   = errors.New("invalid scope for record kind")
	ErrRecordArchived = errors.New("record is archived")
	ErrNotArchived    = errors.New("record is not archived")
)

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Collection names, used as persistence keys at the blob boundary.
const (
	ClientsCollection     = "clients"
	TasksCollection       = "tasks"
	LeadsCollection       = "leads"
	ContentCollection     = "content"
	SOPsCollection        = "sops"
	MeetingsCollection    = "meetings"
	CampaignsCollection   = "campaigns"
	PerformanceCollection = "performance"
)

// CollectionNames lists every collection persisted by the store.
var CollectionNames = []string{
	ClientsCollection,
	TasksCollection,
	LeadsCollection,
	ContentCollection,
	SOPsCollection,
	MeetingsCollection,
	CampaignsCollection,
	PerformanceCollection,
}

// unscoped is the scope key shared by kinds without board grouping.
const unscoped = ""

// setUnscoped implements SetScope for kinds without board grouping.
// Only the empty scope is accepted.
func setUnscoped(scope string) error {
	if scope != unscoped {
		return ErrInvalidScope
	}
	return nil
}
