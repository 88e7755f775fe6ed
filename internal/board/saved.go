package board

import "sync"

// SavedSet holds the ids the user has saved. Cards only report save
// intent; the toggle happens here.
type SavedSet struct {
	mu  sync.RWMutex
	ids map[string]bool
}

func NewSavedSet() *SavedSet {
	return &SavedSet{ids: make(map[string]bool)}
}

// Toggle flips the saved state of id and returns the new state.
func (s *SavedSet) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ids[id] {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = true
	return true
}

func (s *SavedSet) Has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ids[id]
}

func (s *SavedSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}
