package utils

import "sync"

// LockMap hands out one mutex per key, so work on a single train can be
// serialized without blocking bookings for every other train.
type LockMap struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLockMap() *LockMap {
	return &LockMap{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key and returns the matching unlock func.
// Entries are never evicted; the map is bounded by the number of keys seen.
func (m *LockMap) Lock(key string) func() {
	m.mu.Lock()
	l, ok := m.locks[key]
	if !ok {
		l = &sync.Mutex{}
		m.locks[key] = l
	}
	m.mu.Unlock()

	l.Lock()
	return l.Unlock
}
