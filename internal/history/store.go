// Package history holds the session-local log of performed conversions.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Record is one logged conversion. Immutable once created; records are
// only ever removed in bulk via Clear.
type Record struct {
	ID       string
	Input    string
	Output   string
	Category string
	At       time.Time
}

// Store is the single owner of the record sequence. It lives for the
// process lifetime only; nothing is persisted.
type Store struct {
	mu      sync.Mutex
	limit   int
	records []Record
}

// NewStore creates a store keeping at most limit records (0 = unlimited).
// The oldest record is dropped when an append exceeds the limit.
func NewStore(limit int) *Store {
	if limit < 0 {
		limit = 0
	}
	return &Store{limit: limit}
}

// AppendIfChanged appends a record unless the (input, output) pair equals
// the most recently appended one. Only the single latest record is
// compared; earlier duplicates are allowed. Reports whether a record was
// appended.
func (s *Store) AppendIfChanged(input, output, category string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.records); n > 0 {
		last := s.records[n-1]
		if last.Input == input && last.Output == output {
			return last, false
		}
	}
	rec := Record{
		ID:       uuid.NewString(),
		Input:    input,
		Output:   output,
		Category: category,
		At:       time.Now().UTC(),
	}
	s.records = append(s.records, rec)
	if s.limit > 0 && len(s.records) > s.limit {
		s.records = s.records[len(s.records)-s.limit:]
	}
	return rec, true
}

// Recent returns the records newest-first.
func (s *Store) Recent() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	for i, r := range s.records {
		out[len(s.records)-1-i] = r
	}
	return out
}

// Last returns the most recently appended record, if any.
func (s *Store) Last() (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.records) == 0 {
		return Record{}, false
	}
	return s.records[len(s.records)-1], true
}

// Len reports the number of retained records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Clear removes all records unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
}
