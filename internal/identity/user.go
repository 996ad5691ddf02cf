// Package identity is the in-process identity provider: a mock user
// database with seeded test accounts, login/registration with simulated
// network latency, and the current-user lookup the rest of the app
// consults for attribution.
package identity

import "time"

// User is a learner account. Passwords never leave the package.
type User struct {
	ID                string
	Email             string
	FirstName         string
	LastName          string
	Age               int
	Grade             int
	PreferredLanguage string
	CreatedAt         time.Time
	LastLoginAt       time.Time
}

// FullName returns the display name.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Registration carries the fields a new account needs.
type Registration struct {
	Email             string
	Password          string
	FirstName         string
	LastName          string
	Age               int
	Grade             int
	PreferredLanguage string
}

// TestAccount describes a seeded credential pair for the accounts
// listing.
type TestAccount struct {
	Email    string
	Password string
	Profile  string
}
