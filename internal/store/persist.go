package store

import (
	"time"

	"github.com/agencykit/opsdeck/pkg/types"
)

// Persistence machinery. Mutations are applied in memory first; the
// serialized collection is then written according to the configured
// persist mode. Failures never roll the in-memory state back: the user
// already sees the mutation, so the session state stays authoritative
// and the failure is logged and surfaced through the hook.

// enqueuePersist routes a serialized collection to the active persist
// mode. Called with the store mutex held.
func (s *Store) enqueuePersist(name string, data []byte) {
	switch s.cfg.PersistMode {
	case types.PersistOnClose:
		s.queueWrite(name, data, false)
	case types.PersistBatch:
		s.queueWrite(name, data, true)
	default:
		s.writeBlob(name, data)
	}
}

// queueWrite records the latest payload for a collection. Only the most
// recent payload per collection is kept; earlier queued states are
// superseded. In batch mode the queue flushes after BatchSize distinct
// collections or BatchInterval, whichever comes first.
func (s *Store) queueWrite(name string, data []byte, batch bool) {
	s.pendMu.Lock()

	if _, queued := s.pending[name]; !queued {
		s.pendOrder = append(s.pendOrder, name)
	}
	s.pending[name] = data

	if !batch {
		s.pendMu.Unlock()
		return
	}

	if len(s.pendOrder) >= s.cfg.BatchSize {
		writes := s.takePendingLocked()
		s.pendMu.Unlock()
		s.writeAll(writes)
		return
	}

	if s.batchTimer == nil {
		s.batchTimer = time.AfterFunc(s.cfg.BatchInterval, s.flushDeferred)
	}
	s.pendMu.Unlock()
}

// flushDeferred is the batch timer callback.
func (s *Store) flushDeferred() {
	s.pendMu.Lock()
	writes := s.takePendingLocked()
	s.pendMu.Unlock()
	s.writeAll(writes)
}

// flushPending drains the queue synchronously. Called from Detach with
// the store mutex held.
func (s *Store) flushPending() {
	s.pendMu.Lock()
	writes := s.takePendingLocked()
	s.pendMu.Unlock()
	s.writeAll(writes)
}

// takePendingLocked removes and returns queued writes in queue order.
// Callers hold pendMu.
func (s *Store) takePendingLocked() []pendingWrite {
	if s.batchTimer != nil {
		s.batchTimer.Stop()
		s.batchTimer = nil
	}
	if len(s.pendOrder) == 0 {
		return nil
	}
	writes := make([]pendingWrite, 0, len(s.pendOrder))
	for _, name := range s.pendOrder {
		writes = append(writes, pendingWrite{name: name, data: s.pending[name]})
	}
	s.pending = make(map[string][]byte)
	s.pendOrder = nil
	return writes
}

// pendingWrite is one deferred collection save.
type pendingWrite struct {
	name string
	data []byte
}

func (s *Store) writeAll(writes []pendingWrite) {
	for _, w := range writes {
		s.writeBlob(w.name, w.data)
	}
}

// writeBlob performs the actual save. Errors are logged and forwarded
// to the persist-error hook, never returned to the mutating caller.
func (s *Store) writeBlob(name string, data []byte) {
	if s.blobs == nil {
		return
	}
	if err := s.blobs.Save(name, data); err != nil {
		s.log.Warn().Err(err).Str("collection", name).
			Msg("persist failed, in-memory state remains authoritative")
		s.notifyPersistError(name, err)
	}
}

func (s *Store) notifyPersistError(name string, err error) {
	if s.onPersistError != nil {
		s.onPersistError(name, err)
	}
}
