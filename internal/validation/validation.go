// Package validation holds the domain-level field validation used by the
// form session. It is deliberately separate from the struct-tag checks
// the HTTP handlers run: these rules carry exact per-field message texts
// that the form surfaces inline next to each input.
package validation

// Result reports the outcome of validating one candidate record.
// Errors maps a field name ("name", "email", "phone") to the message to
// display for it, and only contains fields that failed. IsValid is true
// exactly when Errors is empty.
type Result struct {
	IsValid bool
	Errors  map[string]string
}

// Validator checks a candidate value and reports structured field errors.
// There is a single concrete implementation in scope (UserValidator), so
// this stays a one-method capability interface rather than any deeper
// hierarchy.
type Validator[T any] interface {
	Validate(input T) Result
}
