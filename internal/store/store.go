package store

import (
	"slices"
	"sync"

	"github.com/idilsaglam/reviews/internal/model"
)

// Store owns the ordered review collection. All mutation goes through its
// methods; callers only ever see copies.
type Store struct {
	mu      sync.RWMutex
	items   []model.Item
	lastSeq uint64
}

func New() *Store {
	return &Store{items: make([]model.Item, 0)}
}

// ReplaceAll discards the collection and installs items verbatim. It always
// wins over optimistic entries still in flight.
func (s *Store) ReplaceAll(items []model.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = slices.Clone(items)
	if s.items == nil {
		s.items = make([]model.Item, 0)
	}
}

// InsertOptimistic prepends draft as a pending optimistic item under a fresh
// temporary id and returns that id. Ids come from a process-scoped counter so
// rapid successive calls never collide.
func (s *Store) InsertOptimistic(draft model.Item) model.ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeq++
	draft.ID = model.TemporaryID(s.lastSeq)
	draft.Sentiment = model.SentimentPending
	draft.Optimistic = true
	s.items = slices.Insert(s.items, 0, draft)
	return draft.ID
}

// Commit replaces the item holding tempID in place with resolved. A missing
// id means the item was already resolved elsewhere; that is a no-op. A
// resolved item must carry a permanent id.
func (s *Store) Commit(tempID model.ID, resolved model.Item) bool {
	if resolved.ID.IsTemporary() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(tempID)
	if i < 0 {
		return false
	}
	resolved.Optimistic = false
	s.items[i] = resolved
	return true
}

// Rollback removes the item holding tempID, if any.
func (s *Store) Rollback(tempID model.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(tempID)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

// Snapshot returns a copy of the current ordered collection.
func (s *Store) Snapshot() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// Find returns the item with the given id.
func (s *Store) Find(id model.ID) (model.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return model.Item{}, false
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// HasOptimistic reports whether any item is still awaiting its result.
func (s *Store) HasOptimistic() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.ContainsFunc(s.items, func(it model.Item) bool { return it.Optimistic })
}

func (s *Store) indexOf(id model.ID) int {
	return slices.IndexFunc(s.items, func(it model.Item) bool { return it.ID == id })
}
