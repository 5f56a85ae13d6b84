package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/companycatalog/catalog-api/internal/core/domain"
	"github.com/companycatalog/catalog-api/internal/core/ports"
)

const defaultPageLimit = 10

// UserService implements registration, authentication and CRUD for the user
// variant of principals.
type UserService struct {
	repo     ports.UserRepository
	hasher   *PasswordHasher
	tokens   ports.TokenIssuer
	throttle ports.LoginThrottle // nil disables throttling
	log      zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher *PasswordHasher, tokens ports.TokenIssuer, throttle ports.LoginThrottle, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, tokens: tokens, throttle: throttle, log: log}
}

// Register hashes the secret and persists a new user. Natural-key and email
// uniqueness are enforced by the store; a conflict surfaces as
// domain.ErrUserExists without any pre-check read.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	username := normalizeKey(input.Username)
	email := normalizeKey(input.Email)
	if username == "" || input.Password == "" || email == "" {
		return nil, domain.ErrInvalidInput
	}
	if !domain.ValidUserRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Name:         input.Name,
		Surname:      input.Surname,
		Email:        email,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("user registration failed")
		return nil, err
	}

	s.log.Info().Str("username", username).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Authenticate verifies the secret for the given username and issues a token.
// Unknown username and wrong password return distinct sentinels here; the
// transport layer renders both identically.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (string, error) {
	username = normalizeKey(username)
	if username == "" || password == "" {
		return "", domain.ErrInvalidInput
	}

	if err := s.checkThrottle(ctx, username); err != nil {
		return "", err
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, username)
			s.log.Warn().Str("username", username).Msg("authentication failed: unknown user")
			return "", domain.ErrPrincipalNotFound
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.recordFailure(ctx, username)
		s.log.Warn().Str("username", username).Msg("authentication failed: secret mismatch")
		return "", domain.ErrSecretMismatch
	}

	s.resetThrottle(ctx, username)

	token, err := s.tokens.Issue(user.ID, user.Role, user.Username, domain.VariantUser)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("username", username).Str("role", user.Role).Msg("user authenticated")
	return token, nil
}

func (s *UserService) List(ctx context.Context, filter ports.UserFilter) (*ports.UserPage, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageLimit
	}

	users, count, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.UserPage{
		Users:       users,
		TotalPages:  totalPages(count, filter.Limit),
		CurrentPage: filter.Page,
	}, nil
}

func (s *UserService) Get(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, normalizeKey(username))
}

// Update mutates profile fields. The stored hash is recomputed only when a
// new password is supplied; every other mutation leaves it untouched.
func (s *UserService) Update(ctx context.Context, username string, input ports.UpdateUserInput) (*domain.User, error) {
	update := ports.UserUpdate{Name: input.Name, Surname: input.Surname}
	if input.Email != nil {
		email := normalizeKey(*input.Email)
		update.Email = &email
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = &hash
	}

	updated, err := s.repo.Update(ctx, normalizeKey(username), update)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", updated.Username).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, username string) (*domain.User, error) {
	deleted, err := s.repo.Delete(ctx, normalizeKey(username))
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", deleted.Username).Msg("user deleted")
	return deleted, nil
}

func (s *UserService) checkThrottle(ctx context.Context, key string) error {
	if s.throttle == nil {
		return nil
	}
	blocked, err := s.throttle.TooMany(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Msg("login throttle check failed")
		return nil
	}
	if blocked {
		s.log.Warn().Str("username", key).Msg("authentication blocked: too many failed attempts")
		return domain.ErrTooManyAttempts
	}
	return nil
}

func (s *UserService) recordFailure(ctx context.Context, key string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, key); err != nil {
		s.log.Warn().Err(err).Msg("login throttle record failed")
	}
}

func (s *UserService) resetThrottle(ctx context.Context, key string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.Reset(ctx, key); err != nil {
		s.log.Warn().Err(err).Msg("login throttle reset failed")
	}
}

// normalizeKey lowercases and trims a natural key or email so lookups and
// uniqueness are case-insensitive.
func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func totalPages(count, limit int64) int64 {
	if count == 0 {
		return 0
	}
	return (count + limit - 1) / limit
}
