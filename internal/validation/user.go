package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/aanand-mishra/user-registration/internal/messages"
	"github.com/aanand-mishra/user-registration/internal/types"
)

// Patterns are intentionally permissive: the email check is a structural
// "something@something.something" test, not RFC 5322, and the phone check
// is the Indian mobile numbering rule (10 digits, first digit 6-9).
var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)
)

// UserValidator validates a User record against the registration rules.
// The zero value is ready to use.
type UserValidator struct{}

var _ Validator[types.User] = UserValidator{}

// Validate checks name, email, and phone. All three rules run — errors
// are collected, not short-circuited across fields — but within a field
// the required check takes precedence, so at most one message per field.
// Checks are trim-aware and the input is never mutated. Gender and ID
// carry no rules here.
func (UserValidator) Validate(user types.User) Result {
	errors := make(map[string]string)

	name := strings.TrimSpace(user.Name)
	if name == "" {
		errors["name"] = messages.NameRequired
	} else if utf8.RuneCountInString(name) < 2 {
		errors["name"] = messages.NameTooShort
	}

	email := strings.TrimSpace(user.Email)
	if email == "" {
		errors["email"] = messages.EmailRequired
	} else if !emailPattern.MatchString(email) {
		errors["email"] = messages.EmailInvalid
	}

	phone := strings.TrimSpace(user.Phone)
	if phone == "" {
		errors["phone"] = messages.PhoneRequired
	} else if !phonePattern.MatchString(phone) {
		errors["phone"] = messages.PhoneInvalid
	}

	return Result{IsValid: len(errors) == 0, Errors: errors}
}
