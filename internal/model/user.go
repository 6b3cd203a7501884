// Package model holds the records read from and written to the LightBNB database.
package model

// User is a guest or property owner.
//
// Password is whatever the caller stored (a bcrypt hash when written through
// the service layer) and is never serialized to JSON.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}
