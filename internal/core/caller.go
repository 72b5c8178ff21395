package core

import "github.com/google/uuid"

// Caller is the identity handed to the pipeline by the session layer. It is
// an explicit tagged variant: either anonymous or an authenticated user
// reference. Anonymous callers run the pipeline unmetered and their reviews
// are not persisted; that is a product decision inherited from the billing
// design, not an oversight.
type Caller struct {
	user *User
}

// Anonymous returns the unauthenticated caller.
func Anonymous() Caller {
	return Caller{}
}

// Authenticated returns a caller bound to the given user.
func Authenticated(u *User) Caller {
	return Caller{user: u}
}

// IsAuthenticated reports whether the caller carries a user reference.
func (c Caller) IsAuthenticated() bool {
	return c.user != nil
}

// User returns the authenticated user, or nil for anonymous callers.
func (c Caller) User() *User {
	return c.user
}

// UserID returns the authenticated user's id. It must only be called when
// IsAuthenticated is true.
func (c Caller) UserID() uuid.UUID {
	return c.user.ID
}
