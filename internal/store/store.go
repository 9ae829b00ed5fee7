// Package store is the client-side collection of users: an in-memory
// id→User map kept in sync with the server by the orchestrator.
//
// The store only ever reflects confirmed server state. The orchestrator
// mutates it after an API call succeeds, never before, so a failed call
// leaves the collection exactly as the server last reported it.
package store

import (
	"sync"

	"github.com/aanand-mishra/user-registration/internal/types"
)

// Users is a keyed collection of user records. Enumeration order is
// unspecified. Safe for concurrent use; the mutation model is still one
// logical action at a time, the lock just keeps hydration from a
// background goroutine honest.
type Users struct {
	mu   sync.RWMutex
	byID map[string]types.User
}

// NewUsers returns an empty collection.
func NewUsers() *Users {
	return &Users{byID: make(map[string]types.User)}
}

// GetAll returns a snapshot of every record. Mutating the returned slice
// does not affect the store.
func (u *Users) GetAll() []types.User {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make([]types.User, 0, len(u.byID))
	for _, rec := range u.byID {
		out = append(out, rec)
	}
	return out
}

// Get returns the record with the given id, if present.
func (u *Users) Get(id string) (types.User, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	rec, ok := u.byID[id]
	return rec, ok
}

// Len reports how many records are stored.
func (u *Users) Len() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.byID)
}

// Upsert inserts the record, or wholesale-replaces the record already
// stored under the same id. The id must be non-empty — the form session
// assigns ids before anything reaches the store, so an empty id here is
// a programming error.
func (u *Users) Upsert(rec types.User) {
	if rec.ID == "" {
		panic("store: Upsert called with empty id")
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.byID[rec.ID] = rec
}

// Remove deletes the record with the given id. Removing an id that is
// not present is a no-op.
func (u *Users) Remove(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.byID, id)
}

// ReplaceAll swaps the entire collection for the given records, used
// when hydrating from the server at startup.
func (u *Users) ReplaceAll(recs []types.User) {
	byID := make(map[string]types.User, len(recs))
	for _, rec := range recs {
		byID[rec.ID] = rec
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.byID = byID
}
