package blob

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencykit/opsdeck/pkg/types"
)

// backends under test share the Store contract.
func openBackends(t *testing.T) map[string]Store {
	t.Helper()
	file, err := NewFile(t.TempDir())
	require.NoError(t, err)
	sqlite, err := NewSQLite(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		file.Close()
		sqlite.Close()
	})
	return map[string]Store{"file": file, "sqlite": sqlite}
}

func TestLoadAbsentCollection(t *testing.T) {
	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			data, ok, err := store.Load("clients")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, data)
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	payload := []byte(`[{"id":"01","name":"Acme"}]`)
	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Save("clients", payload))

			data, ok, err := store.Load("clients")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, payload, data)
		})
	}
}

func TestSaveReplacesPayload(t *testing.T) {
	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Save("tasks", []byte(`[1]`)))
			require.NoError(t, store.Save("tasks", []byte(`[1,2]`)))

			data, ok, err := store.Load("tasks")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, []byte(`[1,2]`), data)
		})
	}
}

func TestCollectionsAreIndependent(t *testing.T) {
	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Save("leads", []byte(`["a"]`)))

			_, ok, err := store.Load("sops")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestFileWritesAreAtomicNamed(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFile(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save("meetings", []byte(`[]`)))

	// The payload lands under <name>.json and no temp files remain.
	_, err = os.Stat(filepath.Join(dir, "meetings.json"))
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestOpenSelectsBackend(t *testing.T) {
	file, err := Open(types.Config{Backend: types.BackendFile, DataDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &File{}, file)
	file.Close()

	sqlite, err := Open(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, sqlite)
	sqlite.Close()

	_, err = Open(types.Config{Backend: "redis"})
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}
