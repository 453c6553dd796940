package ports

import (
	"context"

	"github.com/homeandown/listings-api/internal/core/domain"
)

// AgentDirectoryCache is a read-through cache for the agent directory.
// Get reports ok=false on a miss; cache failures are soft (the service falls
// back to the repository).
type AgentDirectoryCache interface {
	Get(ctx context.Context) (profiles []domain.AgentProfile, ok bool, err error)
	Set(ctx context.Context, profiles []domain.AgentProfile) error
}

// AgentService serves the public agent directory.
type AgentService interface {
	List(ctx context.Context) ([]domain.AgentProfile, error)
}
