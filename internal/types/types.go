// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// handlers, storage, the form session, and the client can all import
// types without depending on each other.
package types

// Gender is the set of values the registration form offers.
// Records are only ever constructed through the form session or decoded
// from API payloads validated with oneof, so a Gender outside these three
// values does not occur.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOthers Gender = "others"
)

// User represents a single registered user.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  — controls how the field appears when encoded to JSON
//     (lowercase names match REST API conventions).
//
//  2. validate:"..." — rules checked by the go-playground/validator
//     package at the HTTP boundary. "inmobile" and "relaxedemail" are
//     custom rules registered by the user handlers package.
//
// ID is an opaque unique identifier. The empty string is a sentinel
// meaning "not yet assigned": a draft being edited in the form. A User
// with an empty ID is never stored, client side or server side.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"   validate:"required,min=2"`
	Email  string `json:"email"  validate:"required,relaxedemail"`
	Phone  string `json:"phone"  validate:"required,inmobile"`
	Gender Gender `json:"gender" validate:"required,oneof=male female others"`
}

// NewDraft returns the blank record the form starts from: no id, empty
// text fields, gender preselected to male.
func NewDraft() User {
	return User{Gender: GenderMale}
}
