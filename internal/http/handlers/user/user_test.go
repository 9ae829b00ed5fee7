package user

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/user-registration/internal/messages"
	"github.com/aanand-mishra/user-registration/internal/storage"
	"github.com/aanand-mishra/user-registration/internal/types"
	"github.com/aanand-mishra/user-registration/internal/utils/response"
)

// memStorage is a map-backed storage.Storage for handler tests: no
// database file, and failures can be injected through err.
type memStorage struct {
	users map[string]types.User
	err   error
}

func newMemStorage() *memStorage {
	return &memStorage{users: make(map[string]types.User)}
}

func (m *memStorage) CreateUser(user types.User) error {
	if m.err != nil {
		return m.err
	}
	if _, exists := m.users[user.ID]; exists {
		return errors.New("duplicate id")
	}
	m.users[user.ID] = user
	return nil
}

func (m *memStorage) GetUserByID(id string) (types.User, error) {
	if m.err != nil {
		return types.User{}, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return types.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (m *memStorage) GetUsers() ([]types.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]types.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memStorage) UpsertUser(user types.User) error {
	if m.err != nil {
		return m.err
	}
	m.users[user.ID] = user
	return nil
}

func (m *memStorage) DeleteUserByID(id string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.users, id)
	return nil
}

// router builds the same mux main registers, so path parameters work.
func router(s storage.Storage) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/users", New(s))
	mux.HandleFunc("GET /api/users", GetList(s))
	mux.HandleFunc("GET /api/users/{id}", GetByID(s))
	mux.HandleFunc("PUT /api/users/{id}", Update(s))
	mux.HandleFunc("DELETE /api/users/{id}", Delete(s))
	return mux
}

func validPayload() types.User {
	return types.User{
		ID:     "1700000000000",
		Name:   "Nisha",
		Email:  "nisha@test.com",
		Phone:  "8899001122",
		Gender: types.GenderFemale,
	}
}

func doJSON(t *testing.T, mux *http.ServeMux, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestNew_CreatesUser(t *testing.T) {
	s := newMemStorage()
	rec := doJSON(t, router(s), http.MethodPost, "/api/users", validPayload())

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"1700000000000"}`, rec.Body.String())
	assert.Contains(t, s.users, "1700000000000")
}

func TestNew_EmptyBody(t *testing.T) {
	rec := doJSON(t, router(newMemStorage()), http.MethodPost, "/api/users", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, response.StatusError, resp.Status)
	assert.Equal(t, "request body is empty", resp.Error)
}

func TestNew_MissingIDRejected(t *testing.T) {
	payload := validPayload()
	payload.ID = ""

	rec := doJSON(t, router(newMemStorage()), http.MethodPost, "/api/users", payload)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "id must be set by the client")
}

func TestNew_ValidationErrorsCarryFieldMessages(t *testing.T) {
	payload := validPayload()
	payload.Phone = "12345"
	payload.Email = "not-an-email"

	rec := doJSON(t, router(newMemStorage()), http.MethodPost, "/api/users", payload)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, messages.PhoneInvalid, resp.Fields["phone"])
	assert.Equal(t, messages.EmailInvalid, resp.Fields["email"])
}

func TestNew_BadGenderRejected(t *testing.T) {
	rec := doJSON(t, router(newMemStorage()), http.MethodPost, "/api/users",
		map[string]string{
			"id": "1", "name": "Nisha", "email": "n@t.co",
			"phone": "8899001122", "gender": "unknown",
		})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNew_StorageFailure(t *testing.T) {
	s := newMemStorage()
	s.err = errors.New("disk full")

	rec := doJSON(t, router(s), http.MethodPost, "/api/users", validPayload())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetList(t *testing.T) {
	s := newMemStorage()
	s.users["1"] = validPayload()

	rec := doJSON(t, router(s), http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var users []types.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.Len(t, users, 1)
}

func TestGetList_EmptyIsArray(t *testing.T) {
	rec := doJSON(t, router(newMemStorage()), http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestGetByID(t *testing.T) {
	s := newMemStorage()
	want := validPayload()
	s.users[want.ID] = want

	rec := doJSON(t, router(s), http.MethodGet, "/api/users/"+want.ID, nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got types.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestGetByID_NotFound(t *testing.T) {
	rec := doJSON(t, router(newMemStorage()), http.MethodGet, "/api/users/missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdate_PathIDWinsOverBody(t *testing.T) {
	s := newMemStorage()
	payload := validPayload()
	payload.ID = "body-id"

	rec := doJSON(t, router(s), http.MethodPut, "/api/users/path-id", payload)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, s.users, "path-id")
	assert.NotContains(t, s.users, "body-id")
}

func TestUpdate_InsertsWhenAbsent(t *testing.T) {
	s := newMemStorage()

	rec := doJSON(t, router(s), http.MethodPut, "/api/users/42", validPayload())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, s.users, "42")
}

func TestDelete(t *testing.T) {
	s := newMemStorage()
	s.users["9"] = validPayload()

	rec := doJSON(t, router(s), http.MethodDelete, "/api/users/9", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, s.users, "9")
	assert.JSONEq(t, `{"status":"deleted"}`, rec.Body.String())
}

func TestDelete_AbsentStillOK(t *testing.T) {
	rec := doJSON(t, router(newMemStorage()), http.MethodDelete, "/api/users/ghost", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
