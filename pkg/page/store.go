package page

import (
	"sort"
	"sync"
)

// Store is the global state shared by every page and layout of a render.
// On the client a Set re-renders the root, so handlers just update the
// store and let hydration redraw.
type Store struct {
	mu     sync.RWMutex
	values map[string]any
	subs   map[int]func()
	nextID int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		values: make(map[string]any),
		subs:   make(map[int]func()),
	}
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// String returns the string stored under key, or "".
func (s *Store) String(key string) string {
	v, _ := s.Get(key)
	str, _ := v.(string)
	return str
}

// Set stores value under key and notifies subscribers. Subscribers run
// outside the lock so they may read the store.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	s.values[key] = value
	subs := s.snapshot()
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// Subscribe registers fn to run after every Set. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// snapshot returns subscribers in registration order. Caller holds mu.
func (s *Store) snapshot() []func() {
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]func(), len(ids))
	for i, id := range ids {
		out[i] = s.subs[id]
	}
	return out
}
