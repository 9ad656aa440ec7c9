package store

import (
	"encoding/json"
	"fmt"

	"github.com/agencykit/opsdeck/pkg/types"
)

// Collection is the ordered, persisted set of records of one kind.
// Position ordering is maintained per scope (board column, category)
// among active records; archived records keep their last position but
// are excluded from reindexing. All operations are serialized by the
// owning store's mutex, so readers never observe a partial transform.
type Collection[T types.Entity] struct {
	store *Store
	name  string
	items []T
}

func newCollection[T types.Entity](s *Store, name string) *Collection[T] {
	return &Collection[T]{store: s, name: name}
}

// Name returns the collection's persistence key.
func (c *Collection[T]) Name() string {
	return c.name
}

// Add validates the draft, assigns ID, timestamps and the tail position
// of the draft's scope, and commits it. The caller's draft is not
// mutated; the committed record is returned.
func (c *Collection[T]) Add(draft T) (T, error) {
	var zero T

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if !c.store.attached {
		return zero, types.ErrStoreDetached
	}
	if draft.Meta().ID != "" {
		// IDs are store-assigned; a draft carrying one is a misuse.
		return zero, types.ErrInvalidData
	}
	if err := draft.Validate(); err != nil {
		return zero, fmt.Errorf("validate %s: %w", c.name, err)
	}

	id, err := c.store.newID()
	if err != nil {
		return zero, fmt.Errorf("assign id: %w", err)
	}

	stored := draft.Clone().(T)
	now := c.store.now()
	meta := stored.Meta()
	meta.ID = id
	meta.CreatedAt = now
	meta.UpdatedAt = now
	meta.Archived = false
	meta.Position = c.maxPosition(stored.Scope()) + 1

	c.items = append(c.items, stored)
	c.persistLocked()
	return stored.Clone().(T), nil
}

// Get returns a copy of the record with the given ID, archived or not.
func (c *Collection[T]) Get(id string) (T, error) {
	var zero T

	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	if !c.store.attached {
		return zero, types.ErrStoreDetached
	}
	i := c.indexOf(id)
	if i < 0 {
		return zero, types.ErrNotFound
	}
	return c.items[i].Clone().(T), nil
}

// Update replaces the stored record's kind-specific fields with those
// of rec, keyed by rec's ID. ID, CreatedAt, Position and Archived are
// immutable through Update. When the update changes the record's scope
// (a status edited in a form), the record is moved to the tail of the
// destination scope and both scopes are re-densified.
func (c *Collection[T]) Update(rec T) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if !c.store.attached {
		return types.ErrStoreDetached
	}
	if rec.Meta().ID == "" {
		return types.ErrInvalidID
	}
	i := c.indexOf(rec.Meta().ID)
	if i < 0 {
		return types.ErrNotFound
	}
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("validate %s: %w", c.name, err)
	}

	existing := c.items[i]
	prev := existing.Meta()

	stored := rec.Clone().(T)
	meta := stored.Meta()
	meta.ID = prev.ID
	meta.CreatedAt = prev.CreatedAt
	meta.Archived = prev.Archived
	meta.Position = prev.Position
	meta.UpdatedAt = c.store.now()

	oldScope := existing.Scope()
	c.items[i] = stored

	if !meta.Archived && stored.Scope() != oldScope {
		// Close the gap left in the source scope, then re-enter at the
		// destination tail.
		c.renumberScope(oldScope)
		meta.Position = c.maxPositionExcept(stored.Scope(), meta.ID) + 1
	}

	c.persistLocked()
	return nil
}

// Delete removes the record permanently and closes the gap it leaves
// in its scope's ordering.
func (c *Collection[T]) Delete(id string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if !c.store.attached {
		return types.ErrStoreDetached
	}
	i := c.indexOf(id)
	if i < 0 {
		return types.ErrNotFound
	}

	removed := c.items[i]
	c.items = append(c.items[:i], c.items[i+1:]...)
	if !removed.Meta().Archived {
		c.renumberScope(removed.Scope())
	}

	c.persistLocked()
	return nil
}

// Archive flags the record as archived. The record keeps its last
// position but leaves the active ordering; default views no longer see
// it. Returns ErrRecordArchived when already archived.
func (c *Collection[T]) Archive(id string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if !c.store.attached {
		return types.ErrStoreDetached
	}
	i := c.indexOf(id)
	if i < 0 {
		return types.ErrNotFound
	}
	meta := c.items[i].Meta()
	if meta.Archived {
		return types.ErrRecordArchived
	}
	meta.Archived = true
	meta.UpdatedAt = c.store.now()

	c.persistLocked()
	return nil
}

// Restore clears the archive flag. The record re-enters its scope's
// ordering at its last known position when that slot is free, otherwise
// at the tail; position uniqueness always wins over position memory.
func (c *Collection[T]) Restore(id string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if !c.store.attached {
		return types.ErrStoreDetached
	}
	i := c.indexOf(id)
	if i < 0 {
		return types.ErrNotFound
	}
	meta := c.items[i].Meta()
	if !meta.Archived {
		return types.ErrNotArchived
	}

	scope := c.items[i].Scope()
	if c.positionTaken(scope, meta.Position) {
		meta.Position = c.maxPosition(scope) + 1
	}
	meta.Archived = false
	meta.UpdatedAt = c.store.now()

	c.persistLocked()
	return nil
}

// Reorder moves the record to target within its scope's active
// ordering and re-densifies the scope to 0..N-1. Out-of-range targets
// are clamped, as a UI drop zone clamps its drop index. Calling twice
// with the same arguments is a no-op the second time.
func (c *Collection[T]) Reorder(id string, target int) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if !c.store.attached {
		return types.ErrStoreDetached
	}
	i := c.indexOf(id)
	if i < 0 {
		return types.ErrNotFound
	}
	rec := c.items[i]
	if rec.Meta().Archived {
		return types.ErrRecordArchived
	}

	c.placeInScope(rec, rec.Scope(), target)
	rec.Meta().UpdatedAt = c.store.now()

	c.persistLocked()
	return nil
}

// Move drags the record to another scope, inserting it at index in the
// destination ordering (negative index means tail). The source scope is
// re-densified to close the gap; the destination is re-densified around
// the insertion. Moving within the record's current scope behaves like
// Reorder.
func (c *Collection[T]) Move(id string, scope string, index int) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if !c.store.attached {
		return types.ErrStoreDetached
	}
	i := c.indexOf(id)
	if i < 0 {
		return types.ErrNotFound
	}
	rec := c.items[i]
	if rec.Meta().Archived {
		return types.ErrRecordArchived
	}

	oldScope := rec.Scope()
	if err := rec.SetScope(scope); err != nil {
		return err
	}
	if scope != oldScope {
		c.renumberScope(oldScope)
	}
	c.placeInScope(rec, scope, index)
	rec.Meta().UpdatedAt = c.store.now()

	c.persistLocked()
	return nil
}

// All returns copies of every record, archived included, in canonical
// order.
func (c *Collection[T]) All() ([]T, error) {
	return c.view(func(T) bool { return true })
}

// Active returns copies of the non-archived records in canonical order.
// This is the default board view.
func (c *Collection[T]) Active() ([]T, error) {
	return c.view(func(item T) bool { return !item.Meta().Archived })
}

// Archived returns copies of the archived records.
func (c *Collection[T]) Archived() ([]T, error) {
	return c.view(func(item T) bool { return item.Meta().Archived })
}

// InScope returns copies of the active records of one scope, ordered by
// position. This is a single board column.
func (c *Collection[T]) InScope(scope string) ([]T, error) {
	return c.view(func(item T) bool {
		return !item.Meta().Archived && item.Scope() == scope
	})
}

func (c *Collection[T]) view(keep func(T) bool) ([]T, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	if !c.store.attached {
		return nil, types.ErrStoreDetached
	}
	var out []T
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item.Clone().(T))
		}
	}
	sortByOrder(out)
	return out, nil
}

// placeInScope inserts rec at the clamped target index of the scope's
// active ordering and renumbers the scope densely. rec may or may not
// currently belong to the scope.
func (c *Collection[T]) placeInScope(rec T, scope string, target int) {
	members := c.activeInScope(scope)

	// Work on the ordering without the moved record.
	rest := members[:0:0]
	for _, m := range members {
		if m.Meta().ID != rec.Meta().ID {
			rest = append(rest, m)
		}
	}

	if target < 0 || target > len(rest) {
		target = len(rest)
	}
	ordered := append(rest[:target:target], rec)
	ordered = append(ordered, rest[target:]...)
	for pos, m := range ordered {
		m.Meta().Position = pos
	}
}

// activeInScope returns the active members of scope sorted by position.
// The returned slice shares the stored records.
func (c *Collection[T]) activeInScope(scope string) []T {
	var members []T
	for _, item := range c.items {
		if !item.Meta().Archived && item.Scope() == scope {
			members = append(members, item)
		}
	}
	sortByOrder(members)
	return members
}

// renumberScope re-densifies the active ordering of scope to 0..N-1,
// preserving relative order.
func (c *Collection[T]) renumberScope(scope string) {
	for pos, m := range c.activeInScope(scope) {
		m.Meta().Position = pos
	}
}

// maxPosition returns the highest position held by an active record of
// scope, or -1 when the scope is empty.
func (c *Collection[T]) maxPosition(scope string) int {
	return c.maxPositionExcept(scope, "")
}

func (c *Collection[T]) maxPositionExcept(scope, exceptID string) int {
	max := -1
	for _, item := range c.items {
		meta := item.Meta()
		if meta.Archived || item.Scope() != scope || meta.ID == exceptID {
			continue
		}
		if meta.Position > max {
			max = meta.Position
		}
	}
	return max
}

// positionTaken reports whether an active record of scope already holds
// pos.
func (c *Collection[T]) positionTaken(scope string, pos int) bool {
	for _, item := range c.items {
		meta := item.Meta()
		if !meta.Archived && item.Scope() == scope && meta.Position == pos {
			return true
		}
	}
	return false
}

func (c *Collection[T]) indexOf(id string) int {
	for i, item := range c.items {
		if item.Meta().ID == id {
			return i
		}
	}
	return -1
}

// persistLocked serializes the collection and hands it to the store's
// persistence machinery. Callers hold the store mutex; the write itself
// is fire-and-forget per the configured persist mode.
func (c *Collection[T]) persistLocked() {
	data, err := json.Marshal(c.items)
	if err != nil {
		// Marshaling plain record structs cannot realistically fail;
		// if it does, keep the in-memory state and report.
		c.store.log.Error().Err(err).Str("collection", c.name).
			Msg("marshal failed, collection not persisted")
		c.store.notifyPersistError(c.name, err)
		return
	}
	c.store.enqueuePersist(c.name, data)
}
