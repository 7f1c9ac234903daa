package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pv/murmurhash2-go/internal/logger"
)

type sqliteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(dbPath string) (Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One writer at a time avoids SQLITE_BUSY between pooled connections.
	db.SetMaxOpenConns(1)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug("SQLite fingerprint store opened", "path", dbPath)
	return &sqliteStorage{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS fingerprints (
			fingerprint INTEGER PRIMARY KEY,
			size INTEGER NOT NULL,
			first_seen DATETIME NOT NULL,
			hits INTEGER NOT NULL DEFAULT 1
		);
		CREATE INDEX IF NOT EXISTS idx_fingerprints_first_seen
			ON fingerprints(first_seen);
	`)
	if err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

func (s *sqliteStorage) Add(fingerprint uint32, size int, seen time.Time) (Entry, bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return Entry{}, false, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	e, ok, err := getEntry(tx.QueryRow(
		`SELECT fingerprint, size, first_seen, hits FROM fingerprints WHERE fingerprint = ?`,
		fingerprint,
	))
	if err != nil {
		return Entry{}, false, err
	}

	if ok {
		if _, err := tx.Exec(`UPDATE fingerprints SET hits = hits + 1 WHERE fingerprint = ?`, fingerprint); err != nil {
			return Entry{}, false, fmt.Errorf("update: %w", err)
		}
		e.Hits++
	} else {
		// Timestamps are compared as text, so they are always stored in UTC.
		e = Entry{Fingerprint: fingerprint, Size: size, FirstSeen: seen.UTC(), Hits: 1}
		if _, err := tx.Exec(
			`INSERT INTO fingerprints (fingerprint, size, first_seen, hits) VALUES (?, ?, ?, ?)`,
			fingerprint, size, e.FirstSeen, e.Hits,
		); err != nil {
			return Entry{}, false, fmt.Errorf("insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Entry{}, false, fmt.Errorf("commit: %w", err)
	}
	return e, ok, nil
}

func (s *sqliteStorage) Get(fingerprint uint32) (Entry, bool, error) {
	return getEntry(s.db.QueryRow(
		`SELECT fingerprint, size, first_seen, hits FROM fingerprints WHERE fingerprint = ?`,
		fingerprint,
	))
}

func getEntry(row *sql.Row) (Entry, bool, error) {
	var e Entry
	err := row.Scan(&e.Fingerprint, &e.Size, &e.FirstSeen, &e.Hits)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("scan: %w", err)
	}
	return e, true, nil
}

func (s *sqliteStorage) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM fingerprints`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

func (s *sqliteStorage) Cleanup(olderThan time.Time) error {
	_, err := s.db.Exec(`DELETE FROM fingerprints WHERE first_seen < ?`, olderThan.UTC())
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}

func (s *sqliteStorage) Close() error {
	return s.db.Close()
}
