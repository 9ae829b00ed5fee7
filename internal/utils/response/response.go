// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Every handler sends JSON back to the client. Rather than repeating
// the same header/status/encode lines in each handler, they live here,
// and error responses always share one envelope shape so API consumers
// know what failures look like.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/user-registration/internal/messages"
)

// Response is the standard envelope returned for error cases.
//
// Success responses may return any JSON shape (a user, a list, a status
// map). Error responses always look like:
//
//	{ "status": "error", "error": "Name is required" }
//
// with an optional per-field breakdown when validation failed:
//
//	{ "status": "error", "error": "validation failed",
//	  "fields": { "phone": "Invalid phone number. Must be 10 digits" } }
type Response struct {
	Status string            `json:"status"`
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Status string constants — used instead of raw literals so a typo is a
// compile error rather than a silently wrong payload.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes data as a JSON body with the given HTTP status code.
// Header order matters: Content-Type must be set before WriteHeader,
// and WriteHeader before any body bytes.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into the standard envelope. Use for
// decode failures, storage errors, and other non-field problems.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ValidationError converts go-playground validation errors into the
// envelope, with a message per failing field. The texts match what the
// registration form shows inline, so a client talking straight to the
// API sees the same wording as a form user.
func ValidationError(errs validator.ValidationErrors) Response {
	fields := make(map[string]string, len(errs))

	for _, e := range errs {
		field := jsonField(e.Field())
		fields[field] = fieldMessage(field, e.ActualTag())
	}

	return Response{
		Status: StatusError,
		Error:  "validation failed",
		Fields: fields,
	}
}

// jsonField lowers the exported struct field name to its wire name.
// The User model's json tags are all just the lowercased field name.
func jsonField(name string) string {
	if name == "" {
		return name
	}
	return string(name[0]|0x20) + name[1:]
}

// fieldMessage picks the user-facing text for one failed rule.
func fieldMessage(field, tag string) string {
	switch field {
	case "name":
		if tag == "required" {
			return messages.NameRequired
		}
		return messages.NameTooShort
	case "email":
		if tag == "required" {
			return messages.EmailRequired
		}
		return messages.EmailInvalid
	case "phone":
		if tag == "required" {
			return messages.PhoneRequired
		}
		return messages.PhoneInvalid
	default:
		return "field " + field + " is invalid"
	}
}
