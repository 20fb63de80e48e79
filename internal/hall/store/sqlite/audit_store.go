package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	dbpkg "github.com/servicehall/hallkeeper/internal/db"
	"github.com/servicehall/hallkeeper/internal/hall/store"
)

type AuditStore struct {
	db     *sql.DB
	writer *dbpkg.Worker
}

func NewAuditStore(db *sql.DB, writer *dbpkg.Worker) *AuditStore {
	return &AuditStore{db: db, writer: writer}
}

func (s *AuditStore) RecordAction(ctx context.Context, rec store.AuditRecord) error {
	if rec.At.IsZero() {
		rec.At = time.Now().UTC()
	}
	atMs := rec.At.UTC().UnixMilli()

	return s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO audit_events(actor, action, entry_id, at_ms)
VALUES (?, ?, ?, ?);
`, rec.Actor, rec.Action, rec.EntryID, atMs); err != nil {
			return fmt.Errorf("RecordAction insert: %w", err)
		}
		return nil
	})
}
