// Package models defines client-side data models for the hostctl CLI.
package models

// User is the last-known account snapshot cached for display. It is refreshed
// opportunistically and is never authoritative for authorization decisions.
type User struct {
	// ID is the platform-wide account identifier.
	ID string `json:"id"`

	// Email is the login identity.
	Email string `json:"email"`

	// Role is the account role ("user", "admin").
	Role string `json:"role"`

	// Balance is the account credit in cents.
	Balance int64 `json:"balance"`
}
