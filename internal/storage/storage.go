// Package storage defines the Storage interface — the contract any
// database backend must satisfy to serve the user API.
//
// Handlers depend only on this interface, never on a concrete driver:
// swapping the backend means implementing these methods and changing
// one line in main, and handler tests can pass a fake instead of a
// real database.
package storage

import (
	"errors"

	"github.com/aanand-mishra/user-registration/internal/types"
)

// ErrNotFound is returned when an id matches no stored user. Handlers
// translate it to a 404 instead of a generic 500.
var ErrNotFound = errors.New("user not found")

// Storage is the database contract for the user resource. Ids are
// opaque strings assigned by the client before the record arrives, so
// there is no auto-generated key to hand back.
type Storage interface {
	// CreateUser inserts a new record. The id must be non-empty and
	// not already present.
	CreateUser(user types.User) error

	// GetUserByID fetches a single record by id.
	// Returns ErrNotFound when nothing matches.
	GetUserByID(id string) (types.User, error)

	// GetUsers returns every stored record.
	// Returns an empty slice (not nil) when there are none.
	GetUsers() ([]types.User, error)

	// UpsertUser replaces the record stored under user.ID wholesale,
	// inserting it if absent. PUT semantics.
	UpsertUser(user types.User) error

	// DeleteUserByID removes a record. Deleting an absent id is a
	// no-op, mirroring the idempotent DELETE contract.
	DeleteUserByID(id string) error
}
