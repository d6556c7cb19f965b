package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/aimaverick/clarity/internal/report"
)

// SQLiteStore persists submissions with write-through semantics: reads are
// served from an embedded MemoryStore, every Put is also written to
// SQLite, and the full set is loaded back at open.
type SQLiteStore struct {
	inner *MemoryStore
	db    *sqlx.DB
	mu    sync.Mutex
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS submissions (
	id             TEXT PRIMARY KEY,
	full_name      TEXT NOT NULL,
	email          TEXT NOT NULL,
	country        TEXT NOT NULL,
	business_stage TEXT NOT NULL,
	created_at     TEXT NOT NULL
);
`

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &SQLiteStore{inner: NewMemoryStore(), db: db}
	if err := s.loadAll(); err != nil {
		db.Close()
		return nil, fmt.Errorf("load submissions: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) loadAll() error {
	rows, err := s.db.Query("SELECT id, full_name, email, country, business_stage, created_at FROM submissions")
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var sub report.LeadSubmission
		var createdAt string
		if err := rows.Scan(&sub.ID, &sub.FullName, &sub.Email, &sub.Country, &sub.BusinessStage, &createdAt); err != nil {
			return err
		}
		sub.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		if err := s.inner.Put(sub); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (s *SQLiteStore) Put(sub report.LeadSubmission) error {
	if err := s.inner.Put(sub); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT OR REPLACE INTO submissions (id, full_name, email, country, business_stage, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		sub.ID,
		sub.FullName,
		sub.Email,
		sub.Country,
		sub.BusinessStage,
		sub.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

func (s *SQLiteStore) Get(id string) (report.LeadSubmission, bool) {
	return s.inner.Get(id)
}

var _ Store = (*SQLiteStore)(nil)
