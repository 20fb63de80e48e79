package memory

import (
	"context"
	"sync"

	"github.com/servicehall/hallkeeper/internal/hall/store"
)

// AuditStore is an in-memory append-only log of admin actions.
// It is intended for use in tests and dev environments.
type AuditStore struct {
	mu      sync.Mutex
	actions []store.AuditRecord
}

func NewAuditStore() *AuditStore {
	return &AuditStore{}
}

func (s *AuditStore) RecordAction(_ context.Context, rec store.AuditRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = append(s.actions, rec)
	return nil
}

// Actions returns a copy of all recorded actions. Test-only helper.
func (s *AuditStore) Actions() []store.AuditRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]store.AuditRecord, len(s.actions))
	copy(out, s.actions)
	return out
}
