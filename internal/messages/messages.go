// Package messages is the single catalog of user-facing strings.
// The validator, the orchestrator, and the terminal front-end all pull
// from here so the same operation always produces the same text.
package messages

// Field-level validation errors, keyed to form inputs.
const (
	NameRequired  = "Name is required"
	NameTooShort  = "Name must be at least 2 characters long"
	EmailRequired = "Email is required"
	EmailInvalid  = "Invalid email"
	PhoneRequired = "Phone is required"
	PhoneInvalid  = "Invalid phone number. Must be 10 digits"
)

// Operation feedback shown as toasts.
const (
	UsersFetched = "Users fetched successfully"
	UserAdded    = "User added successfully"
	UserUpdated  = "User updated successfully"
	UserDeleted  = "User deleted successfully"

	FetchFailed  = "Failed to fetch users"
	AddFailed    = "Failed to add user"
	UpdateFailed = "Failed to update user"
	DeleteFailed = "Failed to delete user"
)

// Terminal front-end strings.
const (
	ConfirmDelete = "Are you sure you want to delete this user?"
	NoUsers       = "No users found. Please add a new user."
	SubmitLabel   = "Submit"
	UpdateLabel   = "Update"
)
