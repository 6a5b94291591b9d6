package service

import "pawsconnect/internal/domain/entity"

// Claims is the identity carried by a validated token. The subject id is an
// int64 everywhere inside the application; it is converted to its canonical
// string form only at the token boundary.
type Claims struct {
	UserID int64
	Role   entity.Role
}

// TokenService issues and validates stateless bearer tokens. Validation is
// self-contained: signature and expiry only, no store lookup. There is no
// revocation; a token stays valid until its expiry elapses.
type TokenService interface {
	// Issue creates a signed token bound to the given user.
	Issue(userID int64, role entity.Role) (string, error)

	// Validate checks signature, structure, and expiry of a token string and
	// returns the embedded claims. Any failure mode returns an error.
	Validate(tokenString string) (*Claims, error)
}
