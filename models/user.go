package models

import "time"

// User represents a MicroFund account used for authentication and as the
// owner of submitted loan applications.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier of the user, assigned at creation
	// and immutable afterwards. Generated server-side as a UUID.
	ID string `json:"id"`

	// FullName is the display name of the account holder.
	FullName string `json:"fullName"`

	// Email is the unique login identifier. Lookups are exact-match and
	// case-sensitive; uniqueness is enforced by the database.
	Email string `json:"email"`

	// PhoneNumber is an optional contact number.
	PhoneNumber string `json:"phoneNumber,omitempty"`

	// AccountType describes the kind of account (e.g. "personal", "business").
	AccountType string `json:"accountType"`

	// PasswordHash is the bcrypt hash of the user's password (salt embedded).
	// It is loaded only on the credential verification path, never exposed
	// via JSON, and never logged.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of the user stripped of credential material.
// Repositories already exclude the hash in their default projections;
// this covers code paths that had to load it.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}
