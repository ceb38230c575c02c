package model

import "time"

// UserDocument holds access-control metadata for an account. It is keyed by
// the auth identity and deliberately unrelated to Player: no foreign key
// links an account to a squad member.
type UserDocument struct {
	ID          string    `json:"id,omitempty"`
	Email       string    `json:"email"`
	Hash        *string   `json:"-"` // Never expose password hash
	DisplayName string    `json:"displayName,omitempty"`
	PhotoURL    string    `json:"photoURL,omitempty"`
	IsAdmin     bool      `json:"isAdmin"`
	IsPlayer    bool      `json:"isPlayer"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// Validate checks user fields for admin writes
func (u *UserDocument) Validate() []FieldError {
	var errs []FieldError
	if u.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	}
	return errs
}

// DefaultUserDocument returns the admin form defaults for a new user record
func DefaultUserDocument() UserDocument {
	return UserDocument{IsPlayer: true}
}

// Session is the resolved authentication state for a request. IsAdmin is
// only trustworthy after the role lookup has settled; an authenticated
// session with an unresolved role reads as non-admin.
type Session struct {
	User    *UserDocument `json:"user"`
	IsAdmin bool          `json:"isAdmin"`
}

// Anonymous reports whether no account is signed in
func (s Session) Anonymous() bool {
	return s.User == nil
}

// AnonymousSession returns the session for an unauthenticated request
func AnonymousSession() *Session {
	return &Session{}
}
