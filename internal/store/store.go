// Package store holds the authoritative in-memory collections behind
// every opsdeck board and view. Each mutation is a single synchronous
// transform guarded by a store-wide mutex, applied optimistically and
// persisted to the blob boundary as a fire-and-forget write.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agencykit/opsdeck/internal/blob"
	"github.com/agencykit/opsdeck/pkg/types"
)

// Store owns one collection per record kind and the persistence
// machinery shared between them. Construct with New, then Attach with a
// validated config before use.
type Store struct {
	mu       sync.RWMutex
	attached bool
	cfg      types.Config
	blobs    blob.Store

	log   zerolog.Logger
	now   func() time.Time
	newID func() (string, error)

	// onPersistError is notified when a fire-and-forget save fails.
	// The in-memory state stays authoritative for the session either way.
	onPersistError func(collection string, err error)

	clients     *Collection[*types.Client]
	tasks       *Collection[*types.Task]
	leads       *Collection[*types.Lead]
	content     *Collection[*types.ContentItem]
	sops        *Collection[*types.SOPItem]
	meetings    *Collection[*types.Meeting]
	campaigns   *Collection[*types.Campaign]
	performance *Collection[*types.PerformanceEntry]

	// Deferred-write state for the on_close and batch persist modes.
	pendMu     sync.Mutex
	pending    map[string][]byte
	pendOrder  []string
	batchTimer *time.Timer
}

// Option adjusts store construction.
type Option func(*Store)

// WithLogger sets the logger used for load-fallback and persist-failure
// warnings.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithClock fixes the clock used for CreatedAt/UpdatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDSource replaces the record ID generator. The default issues
// UUID v7 strings.
func WithIDSource(newID func() (string, error)) Option {
	return func(s *Store) { s.newID = newID }
}

// WithPersistErrorHook registers a callback invoked when a persistence
// write fails. Use it to surface a user-visible warning; the store has
// already applied the mutation in memory.
func WithPersistErrorHook(hook func(collection string, err error)) Option {
	return func(s *Store) { s.onPersistError = hook }
}

// New creates a detached store. Collections exist immediately but every
// operation returns ErrStoreDetached until Attach succeeds.
func New(opts ...Option) *Store {
	s := &Store{
		log: zerolog.New(os.Stderr).With().Timestamp().Logger(),
		now: time.Now,
		newID: func() (string, error) {
			id, err := uuid.NewV7()
			if err != nil {
				return "", err
			}
			return id.String(), nil
		},
		pending: make(map[string][]byte),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.clients = newCollection[*types.Client](s, types.ClientsCollection)
	s.tasks = newCollection[*types.Task](s, types.TasksCollection)
	s.leads = newCollection[*types.Lead](s, types.LeadsCollection)
	s.content = newCollection[*types.ContentItem](s, types.ContentCollection)
	s.sops = newCollection[*types.SOPItem](s, types.SOPsCollection)
	s.meetings = newCollection[*types.Meeting](s, types.MeetingsCollection)
	s.campaigns = newCollection[*types.Campaign](s, types.CampaignsCollection)
	s.performance = newCollection[*types.PerformanceEntry](s, types.PerformanceCollection)
	return s
}

// Collection accessors. Valid for the lifetime of the store; operations
// on them fail with ErrStoreDetached while the store is detached.

func (s *Store) Clients() *Collection[*types.Client]              { return s.clients }
func (s *Store) Tasks() *Collection[*types.Task]                  { return s.tasks }
func (s *Store) Leads() *Collection[*types.Lead]                  { return s.leads }
func (s *Store) Content() *Collection[*types.ContentItem]         { return s.content }
func (s *Store) SOPs() *Collection[*types.SOPItem]                { return s.sops }
func (s *Store) Meetings() *Collection[*types.Meeting]            { return s.meetings }
func (s *Store) Campaigns() *Collection[*types.Campaign]          { return s.campaigns }
func (s *Store) Performance() *Collection[*types.PerformanceEntry] { return s.performance }

// Attach opens the blob backend selected by cfg and loads every
// collection. Returns ErrAlreadyAttached when called twice.
func (s *Store) Attach(cfg types.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	blobs, err := blob.Open(cfg)
	if err != nil {
		return fmt.Errorf("attach store: %w", err)
	}
	if err := s.AttachWith(cfg, blobs); err != nil {
		blobs.Close()
		return err
	}
	return nil
}

// AttachWith attaches to an already-open blob store. Loading never
// fails: an absent or malformed collection falls back to empty with a
// logged warning.
func (s *Store) AttachWith(cfg types.Config, blobs blob.Store) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	s.cfg = cfg
	s.blobs = blobs

	loadItems(s, s.clients)
	loadItems(s, s.tasks)
	loadItems(s, s.leads)
	loadItems(s, s.content)
	loadItems(s, s.sops)
	loadItems(s, s.meetings)
	loadItems(s, s.campaigns)
	loadItems(s, s.performance)

	s.attached = true
	return nil
}

// Detach flushes deferred writes and releases the blob backend.
// Idempotent: detaching a detached store succeeds.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	s.flushPending()
	err := s.blobs.Close()
	s.blobs = nil
	s.attached = false
	if err != nil {
		return fmt.Errorf("detach store: %w", err)
	}
	return nil
}

// Attached reports whether the store is usable.
func (s *Store) Attached() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attached
}

// loadItems fills a collection from the blob boundary. Absence yields
// an empty collection; malformed payloads are logged and dropped rather
// than crashing initialization.
func loadItems[T types.Entity](s *Store, c *Collection[T]) {
	c.items = nil

	data, ok, err := s.blobs.Load(c.name)
	if err != nil {
		s.log.Warn().Err(err).Str("collection", c.name).
			Msg("load failed, starting empty")
		return
	}
	if !ok {
		return
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn().Err(err).Str("collection", c.name).
			Msg("malformed persisted data, starting empty")
		return
	}

	// Drop null entries and records without an ID; they cannot be
	// addressed and would break position maintenance.
	var zero T
	kept := items[:0]
	for _, item := range items {
		if any(item) == any(zero) || item.Meta().ID == "" {
			s.log.Warn().Str("collection", c.name).
				Msg("dropping malformed record")
			continue
		}
		kept = append(kept, item)
	}
	sortByOrder(kept)
	c.items = kept
}

// sortByOrder sorts records by scope, then position, then creation
// time. This is the canonical iteration order of a collection.
func sortByOrder[T types.Entity](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Scope() != b.Scope() {
			return a.Scope() < b.Scope()
		}
		if a.Meta().Position != b.Meta().Position {
			return a.Meta().Position < b.Meta().Position
		}
		return a.Meta().CreatedAt.Before(b.Meta().CreatedAt)
	})
}
