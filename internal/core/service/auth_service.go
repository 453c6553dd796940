package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/homeandown/listings-api/internal/core/domain"
	"github.com/homeandown/listings-api/internal/core/ports"
)

// AuthService implements registration, login and token-based identification.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// normalizeEmail lowercases the address so lookups are case-insensitive.
// Applied at both registration and login.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	if !domain.ValidUserType(input.UserType) {
		return "", nil, domain.ErrInvalidCredentials
	}

	email := normalizeEmail(input.Email)

	// Pre-check keeps the common duplicate path cheap; the unique index on
	// email catches the race where two registrations interleave.
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		Email:              email,
		PasswordHash:       HashPassword(input.Password),
		UserType:           input.UserType,
		Status:             domain.UserStatusActive,
		VerificationStatus: domain.VerificationPending,
		PhoneNumber:        input.PhoneNumber,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("user_type", created.UserType).Msg("user registered")
	return token, created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !VerifyPassword(user.PasswordHash, password) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

func (s *AuthService) Identify(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, userID)
}
