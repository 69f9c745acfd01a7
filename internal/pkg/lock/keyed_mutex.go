// Package lock provides a keyed mutual-exclusion primitive used to serialize
// the placement and delivery sequences per user. A database transaction alone
// does not close the check-then-act window between the eligibility read and
// the ledger append under default isolation; holding the user's key across
// the whole sequence does.
package lock

import "sync"

// KeyedMutex provides one mutex per string key. Entries are reference
// counted and removed when the last holder releases, so the map stays
// proportional to the number of keys currently contended.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*keyedEntry
}

type keyedEntry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedMutex creates an empty KeyedMutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		entries: make(map[string]*keyedEntry),
	}
}

// Lock acquires the mutex for key, blocking while another goroutine holds it.
func (k *KeyedMutex) Lock(key string) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &keyedEntry{}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the mutex for key. Unlocking a key that is not held
// panics, same as sync.Mutex.
func (k *KeyedMutex) Unlock(key string) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		k.mu.Unlock()
		panic("lock: unlock of unheld key " + key)
	}
	e.refs--
	if e.refs == 0 {
		delete(k.entries, key)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}
