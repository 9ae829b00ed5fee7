// Package form implements the registration form's state machine: a
// draft record, the Create/Edit mode toggle, and the
// trim-validate-finalize submit cycle.
package form

import (
	"strings"

	"github.com/aanand-mishra/user-registration/internal/ids"
	"github.com/aanand-mishra/user-registration/internal/types"
	"github.com/aanand-mishra/user-registration/internal/validation"
)

// Mode says whether a submit finalizes a brand-new record or an edit of
// an existing one.
type Mode int

const (
	Create Mode = iota
	Edit
)

func (m Mode) String() string {
	if m == Edit {
		return "edit"
	}
	return "create"
}

// Session owns the in-progress draft. Field edits land in the draft
// without validation; validation runs only on submit, and its errors are
// held here for the view layer to render next to each input.
//
// Not safe for concurrent use. A session belongs to one form.
type Session struct {
	mode      Mode
	draft     types.User
	errors    map[string]string
	validator validation.Validator[types.User]
	gen       *ids.Generator
}

// NewSession returns a session in Create mode with a blank draft.
func NewSession(v validation.Validator[types.User], gen *ids.Generator) *Session {
	s := &Session{validator: v, gen: gen}
	s.LoadBlank()
	return s
}

// Mode reports whether the session is creating or editing.
func (s *Session) Mode() Mode { return s.mode }

// Draft returns a copy of the current draft.
func (s *Session) Draft() types.User { return s.draft }

// Errors returns the field errors from the most recent submit attempt.
// Empty after a successful submit, a LoadForEdit, or a LoadBlank.
func (s *Session) Errors() map[string]string { return s.errors }

// LoadForEdit replaces the draft with a copy of an existing record and
// switches to Edit mode. Any stale errors are cleared.
func (s *Session) LoadForEdit(user types.User) {
	s.mode = Edit
	s.draft = user
	s.errors = map[string]string{}
}

// LoadBlank resets to Create mode with the default blank draft.
func (s *Session) LoadBlank() {
	s.mode = Create
	s.draft = types.NewDraft()
	s.errors = map[string]string{}
}

// SetField writes one field of the draft. No validation happens here —
// the user is still typing. Unknown field names are ignored.
func (s *Session) SetField(name, value string) {
	switch name {
	case "name":
		s.draft.Name = value
	case "email":
		s.draft.Email = value
	case "phone":
		s.draft.Phone = value
	case "gender":
		s.draft.Gender = types.Gender(value)
	}
}

// Submit runs the submit cycle:
//
//  1. Trim name, email, and phone on a copy of the draft.
//  2. Validate the trimmed copy.
//  3. Store the resulting field errors (replacing any previous ones,
//     so a now-valid draft clears old messages).
//  4. On failure, keep the draft untouched for correction and report
//     ok=false.
//  5. On success in Create mode, assign a fresh id to the copy.
//  6. On success, reset to a blank Create session and return the
//     finalized record.
//
// Validation failure is not a Go error — it is ordinary session state.
func (s *Session) Submit() (finalized types.User, ok bool) {
	trimmed := s.draft
	trimmed.Name = strings.TrimSpace(trimmed.Name)
	trimmed.Email = strings.TrimSpace(trimmed.Email)
	trimmed.Phone = strings.TrimSpace(trimmed.Phone)

	result := s.validator.Validate(trimmed)
	s.errors = result.Errors
	if !result.IsValid {
		return types.User{}, false
	}

	if s.mode == Create {
		trimmed.ID = s.gen.New()
	}

	s.LoadBlank()
	return trimmed, true
}
