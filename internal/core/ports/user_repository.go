package ports

import (
	"context"

	"github.com/homeandown/listings-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user and returns it with the store-assigned ID.
	// Returns domain.ErrUserExists when the email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// ListAgents returns active agents ordered by creation time descending,
	// projected down to the public directory fields.
	ListAgents(ctx context.Context) ([]domain.AgentProfile, error)
}
