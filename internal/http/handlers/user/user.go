// Package user contains all HTTP handlers for the user resource.
//
// Handlers use the closure/factory pattern: the router wants a bare
// func(http.ResponseWriter, *http.Request), so each factory takes its
// dependencies (storage) once at registration time and returns a
// handler that closes over them. New(storage) runs once at startup;
// the function it returns runs on every request.
package user

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/user-registration/internal/storage"
	"github.com/aanand-mishra/user-registration/internal/types"
	"github.com/aanand-mishra/user-registration/internal/utils/response"
)

// One validator instance for the package: custom rules are registered
// once, and the instance caches struct metadata between requests.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Permissive structural email check, matching what the form
	// enforces client side. The built-in "email" tag is far stricter
	// and would reject records the form accepted.
	relaxedEmail := regexp.MustCompile(`^\S+@\S+\.\S+$`)
	v.RegisterValidation("relaxedemail", func(fl validator.FieldLevel) bool {
		return relaxedEmail.MatchString(fl.Field().String())
	})

	// Indian mobile numbering: exactly 10 digits, first digit 6-9.
	inMobile := regexp.MustCompile(`^[6-9][0-9]{9}$`)
	v.RegisterValidation("inmobile", func(fl validator.FieldLevel) bool {
		return inMobile.MatchString(fl.Field().String())
	})

	return v
}

// decodeUser reads and validates a user payload from the request body.
// It writes the error response itself and reports ok=false on failure.
func decodeUser(w http.ResponseWriter, r *http.Request) (types.User, bool) {
	var user types.User

	err := json.NewDecoder(r.Body).Decode(&user)
	if errors.Is(err, io.EOF) {
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(errors.New("request body is empty")))
		return types.User{}, false
	}
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return types.User{}, false
	}

	if err := validate.Struct(user); err != nil {
		validateErrs := err.(validator.ValidationErrors)
		response.WriteJSON(w, http.StatusBadRequest,
			response.ValidationError(validateErrs))
		return types.User{}, false
	}

	return user, true
}

// New handles POST /api/users.
//
// Clients mint ids before posting (there is no server-side sequence),
// so the payload must arrive with a non-empty id. Responds 201 with
// {"id": "..."} on success.
func New(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a user")

		user, ok := decodeUser(w, r)
		if !ok {
			return
		}

		if user.ID == "" {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("id must be set by the client")))
			return
		}

		if err := storage.CreateUser(user); err != nil {
			slog.Error("error creating user",
				slog.String("id", user.ID),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("user created", slog.String("id", user.ID))
		response.WriteJSON(w, http.StatusCreated, map[string]string{"id": user.ID})
	}
}

// GetList handles GET /api/users. Returns a JSON array of all users,
// [] (not null) when the table is empty.
func GetList(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all users")

		users, err := storage.GetUsers()
		if err != nil {
			slog.Error("error getting users", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, users)
	}
}

// GetByID handles GET /api/users/{id}. Responds 404 when the id is
// unknown, 200 with the record otherwise.
func GetByID(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("getting a user", slog.String("id", id))

		user, err := store.GetUserByID(id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				response.WriteJSON(w, http.StatusNotFound,
					response.GeneralError(err))
				return
			}
			slog.Error("error getting user",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, user)
	}
}

// Update handles PUT /api/users/{id} with replace-or-insert semantics:
// the stored record is overwritten wholesale, and a PUT for an id not
// yet stored creates it. The path id wins over whatever id the body
// carries. Responds 200 with the stored record.
func Update(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("updating a user", slog.String("id", id))

		user, ok := decodeUser(w, r)
		if !ok {
			return
		}
		user.ID = id

		if err := storage.UpsertUser(user); err != nil {
			slog.Error("error updating user",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("user updated", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK, user)
	}
}

// Delete handles DELETE /api/users/{id}. Deleting an unknown id still
// responds 200 — the end state the client asked for holds either way.
func Delete(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("deleting a user", slog.String("id", id))

		if err := storage.DeleteUserByID(id); err != nil {
			slog.Error("error deleting user",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("user deleted", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}
