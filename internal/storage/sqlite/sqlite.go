// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// SQLite keeps everything in a single file on disk — no server process,
// nothing to install beyond the driver, and plenty fast for this
// workload. The blank import below registers the sqlite3 driver with
// database/sql via the driver package's init(); nothing from it is
// called directly.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/aanand-mishra/user-registration/internal/storage"
	"github.com/aanand-mishra/user-registration/internal/types"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage. It holds a
// *sql.DB, which is a connection pool and safe for concurrent use.
type SQLite struct {
	db *sql.DB
}

var _ storage.Storage = (*SQLite)(nil)

// New opens (or creates) the database file at path and ensures the
// users table exists.
//
// The id column is TEXT, not an autoincrement integer: ids are opaque
// strings minted by the client before the record is ever POSTed, the
// server only enforces their uniqueness.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// Idempotent — safe to run on every startup.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id     TEXT PRIMARY KEY,
			name   TEXT NOT NULL,
			email  TEXT NOT NULL,
			phone  TEXT NOT NULL,
			gender TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// CreateUser inserts a new row. A duplicate id fails on the primary-key
// constraint rather than silently overwriting — creation is not upsert.
func (s *SQLite) CreateUser(user types.User) error {
	stmt, err := s.db.Prepare(
		"INSERT INTO users (id, name, email, phone, gender) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("CreateUser: prepare: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(user.ID, user.Name, user.Email, user.Phone, string(user.Gender))
	if err != nil {
		return fmt.Errorf("CreateUser: exec: %w", err)
	}

	return nil
}

// GetUserByID fetches exactly one row by primary key.
func (s *SQLite) GetUserByID(id string) (types.User, error) {
	stmt, err := s.db.Prepare(
		"SELECT id, name, email, phone, gender FROM users WHERE id = ? LIMIT 1",
	)
	if err != nil {
		return types.User{}, fmt.Errorf("GetUserByID: prepare: %w", err)
	}
	defer stmt.Close()

	var user types.User
	err = stmt.QueryRow(id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.Gender,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.User{}, storage.ErrNotFound
		}
		return types.User{}, fmt.Errorf("GetUserByID: scan: %w", err)
	}

	return user, nil
}

// GetUsers returns all rows. Columns are listed explicitly so a later
// schema change cannot break Scan's ordering the way SELECT * would.
func (s *SQLite) GetUsers() ([]types.User, error) {
	stmt, err := s.db.Prepare(
		"SELECT id, name, email, phone, gender FROM users",
	)
	if err != nil {
		return nil, fmt.Errorf("GetUsers: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("GetUsers: query: %w", err)
	}
	defer rows.Close()

	// Non-nil so an empty table encodes as [] rather than null.
	users := make([]types.User, 0)

	for rows.Next() {
		var user types.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Phone,
			&user.Gender,
		); err != nil {
			return nil, fmt.Errorf("GetUsers: scan row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetUsers: rows iteration: %w", err)
	}

	return users, nil
}

// UpsertUser implements PUT semantics with SQLite's ON CONFLICT clause:
// one statement, insert or full replace, no read-modify-write race.
func (s *SQLite) UpsertUser(user types.User) error {
	stmt, err := s.db.Prepare(`
		INSERT INTO users (id, name, email, phone, gender)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name   = excluded.name,
			email  = excluded.email,
			phone  = excluded.phone,
			gender = excluded.gender
	`)
	if err != nil {
		return fmt.Errorf("UpsertUser: prepare: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(user.ID, user.Name, user.Email, user.Phone, string(user.Gender))
	if err != nil {
		return fmt.Errorf("UpsertUser: exec: %w", err)
	}

	return nil
}

// DeleteUserByID removes a row by primary key. No rows affected is not
// an error.
func (s *SQLite) DeleteUserByID(id string) error {
	stmt, err := s.db.Prepare("DELETE FROM users WHERE id = ?")
	if err != nil {
		return fmt.Errorf("DeleteUserByID: prepare: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(id)
	if err != nil {
		return fmt.Errorf("DeleteUserByID: exec: %w", err)
	}

	return nil
}
