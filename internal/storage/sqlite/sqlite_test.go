package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/user-registration/internal/storage"
	"github.com/aanand-mishra/user-registration/internal/types"
)

func newTestDB(t *testing.T) *SQLite {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleUser(id string) types.User {
	return types.User{
		ID:     id,
		Name:   "Vikram",
		Email:  "vikram@test.com",
		Phone:  "9988776655",
		Gender: types.GenderMale,
	}
}

func TestCreateAndGetByID(t *testing.T) {
	db := newTestDB(t)
	want := sampleUser("1700000000000")

	require.NoError(t, db.CreateUser(want))

	got, err := db.GetUserByID(want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCreateUser_DuplicateIDFails(t *testing.T) {
	db := newTestDB(t)
	user := sampleUser("1")

	require.NoError(t, db.CreateUser(user))
	assert.Error(t, db.CreateUser(user), "primary key constraint must reject a duplicate id")
}

func TestGetUserByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetUserByID("missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetUsers_EmptyIsNonNil(t *testing.T) {
	db := newTestDB(t)

	users, err := db.GetUsers()
	require.NoError(t, err)
	assert.NotNil(t, users, "empty table must encode as [], not null")
	assert.Empty(t, users)
}

func TestGetUsers_ReturnsAllRows(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.CreateUser(sampleUser("1")))
	require.NoError(t, db.CreateUser(sampleUser("2")))

	users, err := db.GetUsers()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUpsertUser_InsertsWhenAbsent(t *testing.T) {
	db := newTestDB(t)
	user := sampleUser("7")

	require.NoError(t, db.UpsertUser(user))

	got, err := db.GetUserByID("7")
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUpsertUser_ReplacesWhenPresent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.CreateUser(sampleUser("7")))

	updated := sampleUser("7")
	updated.Name = "Vikram Singh"
	updated.Gender = types.GenderOthers
	require.NoError(t, db.UpsertUser(updated))

	got, err := db.GetUserByID("7")
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	users, err := db.GetUsers()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestDeleteUserByID(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.CreateUser(sampleUser("9")))

	require.NoError(t, db.DeleteUserByID("9"))

	_, err := db.GetUserByID("9")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteUserByID_AbsentIsNoOp(t *testing.T) {
	db := newTestDB(t)

	assert.NoError(t, db.DeleteUserByID("never-existed"))
}
