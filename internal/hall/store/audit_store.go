package store

import (
	"context"
	"time"
)

// AuditRecord captures a single admin mutation for the audit trail.
type AuditRecord struct {
	Actor   string // username of the matched admin key
	Action  string // "create" | "update" | "remove"
	EntryID uint64
	At      time.Time
}

// AuditStore persists admin actions as an append-only audit log.
type AuditStore interface {
	RecordAction(ctx context.Context, rec AuditRecord) error
}
