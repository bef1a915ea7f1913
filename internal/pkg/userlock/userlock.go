// Package userlock serializes operations per user key. Checkout must not
// race with itself for the same user: two concurrent checkouts could both
// read the cart before either clears it and place the same order twice.
package userlock

import "sync"

// KeyedMutex hands out a mutex per string key. Locks for distinct keys are
// independent, so users never block each other.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedMutex creates an empty keyed mutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[string]*entry),
	}
}

// Lock acquires the mutex for key and returns the function that releases it.
// Entries are reference counted and removed once the last holder unlocks, so
// the map does not grow with the set of keys ever seen.
func (k *KeyedMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
