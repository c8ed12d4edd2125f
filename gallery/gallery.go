// Package gallery holds the in-memory history of generated artworks.
//
// The rendering core produces Artwork records and forgets them; this store
// is the collaborator that owns them. It is a bounded, mutex-guarded list
// with no persistence: restart the process and the history is gone.
package gallery

import (
	"sync"

	"github.com/artgrid/vivid"
)

// DefaultLimit is the cap used when NewStore is given a non-positive limit.
const DefaultLimit = 50

// Store is a bounded in-memory artwork history. Adding beyond the cap
// evicts the oldest entry. Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	limit int
	items []*vivid.Artwork // oldest first
	byID  map[string]*vivid.Artwork
}

// NewStore creates a store holding at most limit artworks.
func NewStore(limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{
		limit: limit,
		byID:  make(map[string]*vivid.Artwork),
	}
}

// Add appends an artwork, evicting the oldest entry once the cap is reached.
func (s *Store) Add(a *vivid.Artwork) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) >= s.limit {
		oldest := s.items[0]
		s.items = s.items[1:]
		delete(s.byID, oldest.ID)
	}
	s.items = append(s.items, a)
	s.byID[a.ID] = a
}

// Get returns the artwork with the given ID.
func (s *Store) Get(id string) (*vivid.Artwork, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byID[id]
	return a, ok
}

// List returns the stored artworks, newest first.
func (s *Store) List() []*vivid.Artwork {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*vivid.Artwork, len(s.items))
	for i, a := range s.items {
		out[len(s.items)-1-i] = a
	}
	return out
}

// Remove deletes the artwork with the given ID, reporting whether it was
// present.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	for i, a := range s.items {
		if a.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of stored artworks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}
