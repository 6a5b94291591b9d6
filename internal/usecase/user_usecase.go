// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"pawsconnect/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Role is optional; an empty or unknown value falls back to "adopter".
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// UserView is the public projection of a user record. The password hash
// never appears in any output of this package.
type UserView struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewUserView builds the public projection from a user entity.
func NewUserView(user *entity.User) *UserView {
	return &UserView{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// LoginOutput returns the issued bearer token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *UserView
}

// AuthStatusOutput reports whether the caller presented a valid token and,
// if so, who they are.
type AuthStatusOutput struct {
	LoggedIn bool      `json:"logged_in"`
	User     *UserView `json:"user,omitempty"`
}

// UserUsecase defines the interface for account and identity operations.
// This is the contract the delivery layer depends on.
type UserUsecase interface {
	// Register creates a new account with a hashed password and returns
	// its public projection.
	Register(ctx context.Context, input RegisterInput) (*UserView, error)

	// Login verifies credentials and issues a bearer token. Unknown email
	// and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// AuthStatus reports the identity behind an already-authenticated
	// subject id, or anonymous when userID is zero.
	AuthStatus(ctx context.Context, userID int64) (*AuthStatusOutput, error)

	// ListUsers returns all accounts. Admin panel only.
	ListUsers(ctx context.Context) ([]*UserView, error)

	// DeleteUser removes an account. Admin panel only.
	DeleteUser(ctx context.Context, id int64) error
}
