package shade

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
)

// UnlockSet is a persistence-backed unlock membership store implementing
// Oracle. Membership is a flat set of item identifiers serialized as a
// sorted JSON array. Safe for concurrent use: the render hook reads while
// gameplay events unlock items from other goroutines.
type UnlockSet struct {
	mu   sync.RWMutex
	ids  map[int]struct{}
	path string
}

// NewUnlockSet creates an empty, unpersisted set. Use LoadUnlockSet to bind
// one to a file.
func NewUnlockSet() *UnlockSet {
	return &UnlockSet{ids: make(map[int]struct{})}
}

// LoadUnlockSet reads the set stored at path. A missing file yields an
// empty set bound to that path, so first runs need no setup.
func LoadUnlockSet(path string) (*UnlockSet, error) {
	s := NewUnlockSet()
	s.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read unlock set: %w", err)
	}

	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("parse unlock set: %w", err)
	}
	for _, id := range ids {
		if id > 0 {
			s.ids[id] = struct{}{}
		}
	}
	return s, nil
}

// Save writes the set to its bound path as a sorted JSON array.
func (s *UnlockSet) Save() error {
	s.mu.RLock()
	ids := make([]int, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	path := s.path
	s.mu.RUnlock()

	if path == "" {
		return errors.New("save unlock set: no path bound")
	}

	sort.Ints(ids)
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode unlock set: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write unlock set: %w", err)
	}
	return nil
}

// Unlock adds an item id to the set. Non-positive ids are ignored.
func (s *UnlockSet) Unlock(id int) {
	if id <= 0 {
		return
	}
	s.mu.Lock()
	s.ids[id] = struct{}{}
	s.mu.Unlock()
}

// Lock removes an item id from the set.
func (s *UnlockSet) Lock(id int) {
	s.mu.Lock()
	delete(s.ids, id)
	s.mu.Unlock()
}

// IsUnlocked reports membership. Implements Oracle; never fails.
func (s *UnlockSet) IsUnlocked(id int) (bool, error) {
	s.mu.RLock()
	_, ok := s.ids[id]
	s.mu.RUnlock()
	return ok, nil
}

// Len returns the number of unlocked items.
func (s *UnlockSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}
