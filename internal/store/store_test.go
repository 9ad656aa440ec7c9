package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencykit/opsdeck/pkg/types"
)

// stubBlob is an in-memory blob store with controllable failures.
type stubBlob struct {
	data     map[string][]byte
	saves    int
	failSave error
}

func newStubBlob() *stubBlob {
	return &stubBlob{data: map[string][]byte{}}
}

func (b *stubBlob) Load(name string) ([]byte, bool, error) {
	data, ok := b.data[name]
	return data, ok, nil
}

func (b *stubBlob) Save(name string, data []byte) error {
	if b.failSave != nil {
		return b.failSave
	}
	b.saves++
	b.data[name] = data
	return nil
}

func (b *stubBlob) Close() error { return nil }

func fileConfig(t *testing.T) types.Config {
	t.Helper()
	return types.Config{Backend: types.BackendFile, DataDir: t.TempDir()}
}

func TestAttachDetachLifecycle(t *testing.T) {
	s := New(WithLogger(zerolog.Nop()))
	cfg := fileConfig(t)

	assert.False(t, s.Attached())
	require.NoError(t, s.Attach(cfg))
	assert.True(t, s.Attached())

	assert.ErrorIs(t, s.Attach(cfg), types.ErrAlreadyAttached)

	require.NoError(t, s.Detach())
	assert.False(t, s.Attached())
	require.NoError(t, s.Detach(), "detach is idempotent")
}

func TestAttachRejectsInvalidConfig(t *testing.T) {
	s := New(WithLogger(zerolog.Nop()))
	assert.ErrorIs(t, s.Attach(types.Config{}), types.ErrBackendEmpty)
	assert.ErrorIs(t, s.Attach(types.Config{Backend: "redis"}), types.ErrBackendUnknown)
}

func TestDetachedOperationsFail(t *testing.T) {
	s := New(WithLogger(zerolog.Nop()))

	_, err := s.Leads().Add(&types.Lead{Name: "x", Stage: types.StageProspect})
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	_, err = s.Leads().Active()
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	assert.ErrorIs(t, s.Leads().Delete("any"), types.ErrStoreDetached)
}

func TestPersistenceRoundTrip(t *testing.T) {
	cfg := fileConfig(t)

	s := New(WithLogger(zerolog.Nop()))
	require.NoError(t, s.Attach(cfg))
	lead, err := s.Leads().Add(&types.Lead{Name: "Acme", Stage: types.StageProspect, EstimatedValue: 5000})
	require.NoError(t, err)
	_, err = s.Clients().Add(&types.Client{Name: "Bravo", Status: types.ClientStatusActive, MRR: 2500})
	require.NoError(t, err)
	require.NoError(t, s.Detach())

	// A fresh store over the same data dir sees the committed records.
	s2 := New(WithLogger(zerolog.Nop()))
	require.NoError(t, s2.Attach(cfg))
	defer s2.Detach()

	got, err := s2.Leads().Get(lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, 5000.0, got.EstimatedValue)
	assert.Equal(t, lead.Position, got.Position)

	clients, err := s2.Clients().Active()
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Bravo", clients[0].Name)
}

func TestMalformedPersistedDataFallsBackEmpty(t *testing.T) {
	cfg := fileConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.DataDir, "leads.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.DataDir, "tasks.json"), []byte(`[null, {"title":"no id"}]`), 0o644))

	s := New(WithLogger(zerolog.Nop()))
	require.NoError(t, s.Attach(cfg), "corrupted data must not fail initialization")
	defer s.Detach()

	leads, err := s.Leads().All()
	require.NoError(t, err)
	assert.Empty(t, leads)

	tasks, err := s.Tasks().All()
	require.NoError(t, err)
	assert.Empty(t, tasks, "records without IDs are dropped")
}

func TestPersistFailureKeepsStateAndNotifies(t *testing.T) {
	blobs := newStubBlob()
	blobs.failSave = errors.New("disk full")

	var failedCollection string
	var failedErr error
	s := New(
		WithLogger(zerolog.Nop()),
		WithPersistErrorHook(func(collection string, err error) {
			failedCollection = collection
			failedErr = err
		}),
	)
	require.NoError(t, s.AttachWith(types.Config{Backend: types.BackendFile}, blobs))
	defer s.Detach()

	lead, err := s.Leads().Add(&types.Lead{Name: "Acme", Stage: types.StageProspect})
	require.NoError(t, err, "the in-memory mutation is applied optimistically")

	assert.Equal(t, types.LeadsCollection, failedCollection)
	assert.ErrorContains(t, failedErr, "disk full")

	// The session keeps serving the applied state.
	got, err := s.Leads().Get(lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)
}

func TestOnClosePersistModeDefersWrites(t *testing.T) {
	blobs := newStubBlob()
	s := New(WithLogger(zerolog.Nop()))
	cfg := types.Config{Backend: types.BackendFile, PersistMode: types.PersistOnClose}
	require.NoError(t, s.AttachWith(cfg, blobs))

	_, err := s.Leads().Add(&types.Lead{Name: "Acme", Stage: types.StageProspect})
	require.NoError(t, err)
	_, err = s.Leads().Add(&types.Lead{Name: "Bravo", Stage: types.StageProspect})
	require.NoError(t, err)

	assert.Equal(t, 0, blobs.saves, "on_close writes nothing until detach")

	require.NoError(t, s.Detach())
	assert.Equal(t, 1, blobs.saves, "queued states coalesce to the latest payload")
	assert.Contains(t, string(blobs.data[types.LeadsCollection]), "Bravo")
}

func TestBatchPersistModeFlushesOnSize(t *testing.T) {
	blobs := newStubBlob()
	s := New(WithLogger(zerolog.Nop()))
	cfg := types.Config{
		Backend:       types.BackendFile,
		PersistMode:   types.PersistBatch,
		BatchSize:     2,
		BatchInterval: time.Hour,
	}
	require.NoError(t, s.AttachWith(cfg, blobs))
	defer s.Detach()

	_, err := s.Leads().Add(&types.Lead{Name: "Acme", Stage: types.StageProspect})
	require.NoError(t, err)
	assert.Equal(t, 0, blobs.saves, "below batch size, nothing is written")

	_, err = s.Clients().Add(&types.Client{Name: "Bravo", Status: types.ClientStatusActive})
	require.NoError(t, err)
	assert.Equal(t, 2, blobs.saves, "second distinct collection triggers the flush")
}

func TestSnapshotExcludesArchived(t *testing.T) {
	s := newTestStore(t)

	kept, err := s.Clients().Add(&types.Client{Name: "kept", Status: types.ClientStatusActive, MRR: 100})
	require.NoError(t, err)
	gone, err := s.Clients().Add(&types.Client{Name: "gone", Status: types.ClientStatusActive, MRR: 100})
	require.NoError(t, err)
	require.NoError(t, s.Clients().Archive(gone.ID))

	snap, err := s.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.Clients, 1)
	assert.Equal(t, kept.ID, snap.Clients[0].ID)
}

func TestStableClockAndIDSource(t *testing.T) {
	fixed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	ids := []string{"id-a", "id-b"}
	s := New(
		WithLogger(zerolog.Nop()),
		WithClock(func() time.Time { return fixed }),
		WithIDSource(func() (string, error) {
			id := ids[0]
			ids = ids[1:]
			return id, nil
		}),
	)
	require.NoError(t, s.AttachWith(types.Config{Backend: types.BackendFile}, newStubBlob()))
	defer s.Detach()

	lead, err := s.Leads().Add(&types.Lead{Name: "Acme", Stage: types.StageProspect})
	require.NoError(t, err)
	assert.Equal(t, "id-a", lead.ID)
	assert.Equal(t, fixed, lead.CreatedAt)
	assert.Equal(t, fixed, lead.UpdatedAt)
}
