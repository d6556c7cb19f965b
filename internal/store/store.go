// Package store keeps accepted lead submissions queryable by id for the
// life of the process, or across restarts when backed by SQLite. The
// store is append-only: no update, no delete, no eviction.
package store

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"github.com/aimaverick/clarity/internal/report"
)

// Store is the submission storage capability the delivery layer depends
// on. Implementations must make Put atomic so concurrent submissions need
// no further coordination.
type Store interface {
	Put(sub report.LeadSubmission) error
	Get(id string) (report.LeadSubmission, bool)
}

// NewSubmissionID returns a fresh 16-byte hex token. Collisions are
// negligible even for submissions landing in the same instant.
func NewSubmissionID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// MemoryStore is the default process-lifetime store.
type MemoryStore struct {
	mu          sync.RWMutex
	submissions map[string]report.LeadSubmission
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{submissions: make(map[string]report.LeadSubmission)}
}

func (s *MemoryStore) Put(sub report.LeadSubmission) error {
	s.mu.Lock()
	s.submissions[sub.ID] = sub
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Get(id string) (report.LeadSubmission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.submissions[id]
	return sub, ok
}

// Len reports the number of stored submissions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.submissions)
}

var _ Store = (*MemoryStore)(nil)
