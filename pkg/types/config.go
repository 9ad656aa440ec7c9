package types

import (
	"errors"
	"time"
)

// Config holds backend selection and persistence parameters for
// Store.Attach.
type Config struct {
	Backend       string        `json:"backend" yaml:"backend"`
	DataDir       string        `json:"data_dir" yaml:"data_dir"`
	PersistMode   string        `json:"persist_mode" yaml:"persist_mode"`
	BatchSize     int           `json:"batch_size" yaml:"batch_size"`
	BatchInterval time.Duration `json:"batch_interval" yaml:"batch_interval"`
}

// Supported backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Persist modes. Immediate writes each mutated collection as it changes;
// on_close defers every write until Detach; batch flushes after BatchSize
// queued writes or BatchInterval, whichever comes first.
const (
	PersistImmediate = "immediate"
	PersistOnClose   = "on_close"
	PersistBatch     = "batch"
)

// Config validation errors.
var (
	ErrBackendEmpty         = errors.New("backend must not be empty")
	ErrBackendUnknown       = errors.New("unknown backend")
	ErrPersistModeUnknown   = errors.New("unknown persist mode")
	ErrBatchSizeInvalid     = errors.New("batch size must be positive")
	ErrBatchIntervalInvalid = errors.New("batch interval must be positive")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendFile:   true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure. An empty PersistMode is valid and
// means PersistImmediate.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	switch c.PersistMode {
	case "", PersistImmediate, PersistOnClose:
	case PersistBatch:
		if c.BatchSize <= 0 {
			return ErrBatchSizeInvalid
		}
		if c.BatchInterval <= 0 {
			return ErrBatchIntervalInvalid
		}
	default:
		return ErrPersistModeUnknown
	}
	return nil
}
