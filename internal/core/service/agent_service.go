package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/homeandown/listings-api/internal/core/domain"
	"github.com/homeandown/listings-api/internal/core/ports"
)

// AgentService serves the public agent directory through a read-through
// cache. Cache failures are soft: the repository is always the source of
// truth and a broken cache only costs a round trip.
type AgentService struct {
	users  ports.UserRepository
	cache  ports.AgentDirectoryCache
	logger zerolog.Logger
}

// NewAgentService creates an AgentService. cache may be nil, in which case
// every call hits the repository.
func NewAgentService(users ports.UserRepository, cache ports.AgentDirectoryCache, logger zerolog.Logger) *AgentService {
	return &AgentService{users: users, cache: cache, logger: logger}
}

func (s *AgentService) List(ctx context.Context) ([]domain.AgentProfile, error) {
	if s.cache != nil {
		profiles, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("agent cache read failed")
		} else if ok {
			return profiles, nil
		}
	}

	profiles, err := s.users.ListAgents(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, profiles); err != nil {
			s.logger.Warn().Err(err).Msg("agent cache write failed")
		}
	}
	return profiles, nil
}
