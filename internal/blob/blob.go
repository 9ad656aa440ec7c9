// Package blob implements the persistence boundary of the opsdeck store:
// a key-value mapping from collection name to a JSON-encoded array of
// records. Backends must treat an absent key as an empty collection,
// never as an error.
package blob

import (
	"fmt"

	"github.com/agencykit/opsdeck/pkg/types"
)

// Store is the contract the opsdeck store persists through.
type Store interface {
	// Load returns the payload stored under name. ok is false when
	// nothing has been stored yet; absence is not an error.
	Load(name string) (data []byte, ok bool, err error)

	// Save replaces the payload stored under name.
	Save(name string, data []byte) error

	// Close releases backend resources.
	Close() error
}

// Open creates the blob store selected by cfg.Backend, rooted at
// cfg.DataDir.
func Open(cfg types.Config) (Store, error) {
	switch cfg.Backend {
	case types.BackendFile:
		return NewFile(cfg.DataDir)
	case types.BackendSQLite:
		return NewSQLite(cfg.DataDir)
	default:
		return nil, fmt.Errorf("open blob store: %w", types.ErrBackendUnknown)
	}
}
