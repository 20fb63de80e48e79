package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	dbpkg "github.com/servicehall/hallkeeper/internal/db"
	"github.com/servicehall/hallkeeper/internal/hall/store"
)

// KVStore is the persistent key-value backend over the records table.
// Reads go straight to the connection; every write runs through the
// single-writer worker.
type KVStore struct {
	db     *sql.DB
	writer *dbpkg.Worker
}

func NewKVStore(db *sql.DB, writer *dbpkg.Worker) *KVStore {
	return &KVStore{db: db, writer: writer}
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM records WHERE key = ?;`, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("Get %s: %w", key, err)
	}
	return value, nil
}

func (s *KVStore) Put(ctx context.Context, key string, value []byte) error {
	return s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO records(key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value;
`, key, value); err != nil {
			return fmt.Errorf("Put %s: %w", key, err)
		}
		return nil
	})
}

func (s *KVStore) Delete(ctx context.Context, key string) (bool, error) {
	var deleted bool
	err := s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`DELETE FROM records WHERE key = ?;`, key,
		)
		if err != nil {
			return fmt.Errorf("Delete %s: %w", key, err)
		}
		n, _ := res.RowsAffected()
		deleted = n > 0
		return nil
	})
	return deleted, err
}

// ScanPrefix walks the key range [prefix, prefixEnd) in lexicographic key
// order, so "SI-10" sorts before "SI-2". Callers must not rely on numeric
// ID order.
func (s *KVStore) ScanPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	query := `SELECT value FROM records WHERE key >= ? ORDER BY key;`
	args := []any{prefix}
	if end, ok := prefixEnd(prefix); ok {
		query = `SELECT value FROM records WHERE key >= ? AND key < ? ORDER BY key;`
		args = append(args, end)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ScanPrefix %s: %w", prefix, err)
	}
	defer rows.Close()

	var values [][]byte
	for rows.Next() {
		var v []byte
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("ScanPrefix %s scan: %w", prefix, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ScanPrefix %s rows: %w", prefix, err)
	}
	return values, nil
}

// NextID bumps the record counter atomically. Going through the writer
// serializes allocations, so concurrent creates always get distinct,
// monotonically increasing IDs.
func (s *KVStore) NextID(ctx context.Context) (uint64, error) {
	var id uint64
	err := s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
UPDATE counters SET value = value + 1 WHERE name = 'record_id' RETURNING value;
`).Scan(&id)
		if err != nil {
			return fmt.Errorf("NextID: %w", err)
		}
		return nil
	})
	return id, err
}

// prefixEnd returns the smallest key greater than every key carrying the
// prefix, for use as an exclusive range bound. ok is false when the prefix
// is all 0xff bytes and no such bound exists.
func prefixEnd(prefix string) (end string, ok bool) {
	b := []byte(prefix)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < 0xff {
			b[i]++
			return string(b[:i+1]), true
		}
	}
	return "", false
}
