// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache keeps fetched UniProtKB records in a local SQLite database
// so repeated lookups do not hit the REST API.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/protein-viewer/pkg/types"
)

const dbFile = "records.db"

// Entry is one cached record.
type Entry struct {
	Accession string
	Body      string
	FetchedAt time.Time
}

// Stats summarizes the cache contents.
type Stats struct {
	Records int
	Bytes   int64
	Oldest  time.Time
	Newest  time.Time
}

// Store manages the record cache database.
type Store struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// Open opens or creates {cfg.Dir}/records.db and its schema.
func Open(cfg types.CacheConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, ttl: cfg.TTL, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS records (
		accession TEXT PRIMARY KEY,
		body TEXT NOT NULL,
		fetched_at INTEGER NOT NULL
	)`)
	return err
}

// Get returns the cached entry for accession. ok is false when there is
// no entry or the entry is older than the configured TTL.
func (s *Store) Get(ctx context.Context, accession string) (e Entry, ok bool, err error) {
	var fetched int64
	err = s.db.QueryRowContext(ctx,
		`SELECT accession, body, fetched_at FROM records WHERE accession = ?`, accession,
	).Scan(&e.Accession, &e.Body, &fetched)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("reading cached record %s: %w", accession, err)
	}

	e.FetchedAt = time.Unix(0, fetched).UTC()
	if s.ttl > 0 && s.now().Sub(e.FetchedAt) > s.ttl {
		return e, false, nil
	}
	return e, true, nil
}

// Put stores body for accession, replacing any previous entry.
func (s *Store) Put(ctx context.Context, accession, body string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO records (accession, body, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(accession) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at`,
		accession, body, s.now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("caching record %s: %w", accession, err)
	}
	return nil
}

// Delete removes the entry for accession, if any.
func (s *Store) Delete(ctx context.Context, accession string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE accession = ?`, accession); err != nil {
		return fmt.Errorf("deleting cached record %s: %w", accession, err)
	}
	return nil
}

// Purge deletes entries fetched more than olderThan ago and returns how
// many were removed. A zero olderThan removes everything.
func (s *Store) Purge(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := s.now().Add(-olderThan).UnixNano()
	res, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE fetched_at <= ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purging cache: %w", err)
	}
	return res.RowsAffected()
}

// Stats reports the number of entries, total body size, and fetch-time range.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var (
		st             Stats
		bytes          sql.NullInt64
		oldest, newest sql.NullInt64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), SUM(LENGTH(body)), MIN(fetched_at), MAX(fetched_at) FROM records`,
	).Scan(&st.Records, &bytes, &oldest, &newest)
	if err != nil {
		return Stats{}, fmt.Errorf("reading cache stats: %w", err)
	}
	st.Bytes = bytes.Int64
	if oldest.Valid {
		st.Oldest = time.Unix(0, oldest.Int64).UTC()
	}
	if newest.Valid {
		st.Newest = time.Unix(0, newest.Int64).UTC()
	}
	return st, nil
}
