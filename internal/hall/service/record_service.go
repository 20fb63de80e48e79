package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/servicehall/hallkeeper/internal/hall/codec"
	"github.com/servicehall/hallkeeper/internal/hall/store"
	"github.com/servicehall/hallkeeper/internal/hall/types"
)

// RecordService owns the entry lifecycle against the key-value backend.
// Every operation is a bounded number of backend round-trips ending in
// exactly one shaped Result; reads and writes for a single entry touch a
// single key.
type RecordService struct {
	kv     store.KV
	audit  store.AuditStore
	logger *slog.Logger
}

func NewRecordService(kv store.KV, audit store.AuditStore, logger *slog.Logger) *RecordService {
	return &RecordService{kv: kv, audit: audit, logger: logger}
}

// Create allocates a fresh ID, stamps the entry with today's date (server
// clock, UTC; any submitted date is ignored), derives the anchor, and
// writes the entry under its key. No duplicate check is needed since the
// ID has never been issued before.
func (s *RecordService) Create(ctx context.Context, sub types.RecordSubmission, actor *AdminKey) Result {
	id, err := s.kv.NextID(ctx)
	if err != nil {
		return s.fail("allocate id", err)
	}

	entry := types.HallEntry{
		ID:              id,
		ReferenceID:     sub.ReferenceID,
		AffectedService: sub.AffectedService,
		Date:            types.Today(),
		Summary:         sub.Summary,
		Reporter:        sub.Reporter,
		ReporterHandle:  sub.ReporterHandle,
	}

	// Derived once, before persistence. Never recomputed afterwards.
	if err := entry.GenerateAnchor(); err != nil {
		return s.fail("derive anchor", err)
	}

	raw, err := codec.Marshal(&entry)
	if err != nil {
		return s.fail("encode entry", err)
	}
	if err := s.kv.Put(ctx, store.KeyFor(id), raw); err != nil {
		return s.fail("write entry", err)
	}

	msg := fmt.Sprintf("Report created (ID: %d)", id)
	s.logger.Info(msg, "actor", actor.Username)
	s.recordAudit(ctx, actor, "create", id)
	return Result{Code: http.StatusCreated, Message: msg}
}

// Remove deletes the entry under the ID's key. A missing entry is a client
// error with no side effect; success carries no body.
func (s *RecordService) Remove(ctx context.Context, id uint64, actor *AdminKey) Result {
	deleted, err := s.kv.Delete(ctx, store.KeyFor(id))
	if err != nil {
		return s.fail("delete entry", err)
	}
	if !deleted {
		return badRequest(msgNotFound)
	}

	s.logger.Info(fmt.Sprintf("Report removed (ID: %d)", id), "actor", actor.Username)
	s.recordAudit(ctx, actor, "remove", id)
	return Result{Code: http.StatusNoContent}
}

// Update overwrites the mutable fields of an existing entry. The stored
// entry's ID must match the requested key's ID: a mismatch means the key
// and value desynced, which is refused and reported, never repaired. ID,
// Date and AnchorKey carry over unchanged from the stored entry, so edited
// entries keep the anchor minted at creation.
func (s *RecordService) Update(ctx context.Context, sub types.RecordSubmission, actor *AdminKey) Result {
	if sub.ID == nil {
		return badRequest(msgNoID)
	}
	id := *sub.ID
	key := store.KeyFor(id)

	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return badRequest(msgNotFound)
	}
	if err != nil {
		return s.fail("read entry", err)
	}

	var current types.HallEntry
	if err := codec.Unmarshal(raw, &current); err != nil {
		return s.fail("decode entry", err)
	}
	if current.ID != id {
		return badRequest(msgIDMismatch)
	}

	updated := current
	updated.ReferenceID = sub.ReferenceID
	updated.AffectedService = sub.AffectedService
	updated.Summary = sub.Summary
	updated.Reporter = sub.Reporter
	updated.ReporterHandle = sub.ReporterHandle

	raw, err = codec.Marshal(&updated)
	if err != nil {
		return s.fail("encode entry", err)
	}
	if err := s.kv.Put(ctx, key, raw); err != nil {
		return s.fail("write entry", err)
	}

	msg := fmt.Sprintf("Report has been updated (ID: %d)", id)
	s.logger.Info(msg, "actor", actor.Username)
	s.recordAudit(ctx, actor, "update", id)
	return Result{Code: http.StatusOK, Message: msg}
}

// List decodes every entry under the record prefix, in backend scan order.
func (s *RecordService) List(ctx context.Context) ([]types.HallEntry, error) {
	values, err := s.kv.ScanPrefix(ctx, store.RecordKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("scan records: %w", err)
	}

	entries := make([]types.HallEntry, 0, len(values))
	for _, raw := range values {
		var e types.HallEntry
		if err := codec.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// recordAudit persists the admin action to the audit trail. Errors are
// intentionally not returned to the caller: a failed audit write should
// not turn an already-applied mutation into a reported failure.
func (s *RecordService) recordAudit(ctx context.Context, actor *AdminKey, action string, id uint64) {
	err := s.audit.RecordAction(ctx, store.AuditRecord{
		Actor:   actor.Username,
		Action:  action,
		EntryID: id,
		At:      time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("audit write failed", "action", action, "id", id, "err", err)
	}
}

// fail logs the underlying failure and returns the one opaque server
// result. Callers never see infrastructure detail.
func (s *RecordService) fail(op string, err error) Result {
	s.logger.Error("operation failed", "op", op, "err", err)
	return OperationFailed()
}
