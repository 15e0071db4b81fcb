package state

import (
	"context"
	"sync"

	"github.com/MrSnakeDoc/lune/internal/domain"
	"github.com/MrSnakeDoc/lune/internal/logger"
)

// EntryStore owns the ordered diary entry collection. Insertion order is
// creation order, not necessarily date order. No other component mutates
// the collection directly.
type EntryStore struct {
	mu      sync.RWMutex
	entries []domain.DiaryEntry
	repo    Repository
	logger  logger.Logger
}

// NewEntryStore creates an empty entry store backed by repo.
func NewEntryStore(repo Repository, log logger.Logger) *EntryStore {
	return &EntryStore{
		entries: []domain.DiaryEntry{},
		repo:    repo,
		logger:  log,
	}
}

// Bootstrap replaces the in-memory collection with the persisted snapshot.
// A read failure leaves the store empty and is reported to the caller so
// startup can log it; it is not fatal.
func (s *EntryStore) Bootstrap(ctx context.Context) error {
	entries, err := s.repo.LoadEntries(ctx)
	if err != nil {
		return err
	}
	if entries == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
	return nil
}

// Add appends entry to the end of the collection and persists the updated
// snapshot. The caller is responsible for id uniqueness; no dedup check
// is performed.
func (s *EntryStore) Add(ctx context.Context, entry domain.DiaryEntry) {
	s.mu.Lock()
	s.entries = append(s.entries, entry)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
}

// Remove deletes the entry with the given id. Removing a nonexistent id
// is a no-op, not an error.
func (s *EntryStore) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	kept := s.entries[:0]
	removed := false
	for _, entry := range s.entries {
		if !removed && entry.ID == id {
			removed = true
			continue
		}
		kept = append(kept, entry)
	}
	s.entries = kept
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if removed {
		s.persist(ctx, snapshot)
	}
}

// ByDateRange returns entries whose date falls within [start, end].
// The date form is zero-padded YYYY-MM-DD, so lexicographic comparison
// equals chronological comparison. Pure read, no side effect.
func (s *EntryStore) ByDateRange(start, end string) []domain.DiaryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]domain.DiaryEntry, 0)
	for _, entry := range s.entries {
		if entry.Date >= start && entry.Date <= end {
			matched = append(matched, entry)
		}
	}
	return matched
}

// All returns a copy of the full collection in insertion order.
func (s *EntryStore) All() []domain.DiaryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

// Len returns the number of entries.
func (s *EntryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// Persist re-saves the current snapshot. Used by the snapshot flusher to
// re-converge durable state after a swallowed write failure.
func (s *EntryStore) Persist(ctx context.Context) error {
	s.mu.RLock()
	snapshot := s.snapshotLocked()
	s.mu.RUnlock()

	return s.repo.SaveEntries(ctx, snapshot)
}

func (s *EntryStore) snapshotLocked() []domain.DiaryEntry {
	snapshot := make([]domain.DiaryEntry, len(s.entries))
	copy(snapshot, s.entries)
	return snapshot
}

// persist writes the snapshot best-effort: failures are logged, never
// surfaced, never retried.
func (s *EntryStore) persist(ctx context.Context, snapshot []domain.DiaryEntry) {
	if err := s.repo.SaveEntries(ctx, snapshot); err != nil {
		s.logger.Warn("failed to persist entries, in-memory state kept",
			logger.Int("entries", len(snapshot)),
			logger.Error(err))
	}
}
