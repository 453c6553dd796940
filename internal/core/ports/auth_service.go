package ports

import (
	"context"

	"github.com/homeandown/listings-api/internal/core/domain"
)

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	UserType    string
	PhoneNumber string
}

// AuthService defines the authentication use cases.
type AuthService interface {
	// Register creates an account and returns a signed token plus the
	// created user. Fails with domain.ErrUserExists on duplicate email.
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	// Login verifies credentials and returns a signed token plus the full
	// profile. A lookup miss and a digest mismatch are indistinguishable:
	// both fail with domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Identify resolves a raw token to its user. Fails with
	// domain.ErrInvalidToken or domain.ErrUserNotFound.
	Identify(ctx context.Context, token string) (*domain.User, error)
}

// TokenService issues and validates signed, time-bound identity tokens.
// Tokens are stateless: there is no refresh, rotation or revocation.
type TokenService interface {
	Issue(userID string) (string, error)
	// Verify returns the user ID carried by the token. Any signature,
	// payload or expiry problem fails with domain.ErrInvalidToken.
	Verify(token string) (string, error)
}
