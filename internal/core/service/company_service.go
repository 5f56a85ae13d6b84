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

// CompanyService implements registration, authentication and CRUD for the
// company variant of principals. Company names keep their display casing;
// the repository matches them case-insensitively.
type CompanyService struct {
	repo     ports.CompanyRepository
	hasher   *PasswordHasher
	tokens   ports.TokenIssuer
	throttle ports.LoginThrottle // nil disables throttling
	log      zerolog.Logger
}

func NewCompanyService(repo ports.CompanyRepository, hasher *PasswordHasher, tokens ports.TokenIssuer, throttle ports.LoginThrottle, log zerolog.Logger) *CompanyService {
	return &CompanyService{repo: repo, hasher: hasher, tokens: tokens, throttle: throttle, log: log}
}

func (s *CompanyService) Register(ctx context.Context, input ports.RegisterCompanyInput) (*domain.Company, error) {
	name := strings.TrimSpace(input.CompanyName)
	email := normalizeKey(input.Email)
	if name == "" || input.Password == "" || email == "" {
		return nil, domain.ErrInvalidInput
	}
	if !domain.ValidCompanyRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	company := &domain.Company{
		CompanyName:  name,
		PasswordHash: hash,
		Email:        email,
		Address:      input.Address,
		Phone:        input.Phone,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, company)
	if err != nil {
		s.log.Warn().Err(err).Str("company", name).Msg("company registration failed")
		return nil, err
	}

	s.log.Info().Str("company", name).Str("role", created.Role).Msg("company registered")
	return created, nil
}

func (s *CompanyService) Authenticate(ctx context.Context, companyName, password string) (string, error) {
	name := strings.TrimSpace(companyName)
	if name == "" || password == "" {
		return "", domain.ErrInvalidInput
	}

	throttleKey := normalizeKey(name)
	if err := s.checkThrottle(ctx, throttleKey); err != nil {
		return "", err
	}

	company, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			s.recordFailure(ctx, throttleKey)
			s.log.Warn().Str("company", name).Msg("authentication failed: unknown company")
			return "", domain.ErrPrincipalNotFound
		}
		return "", err
	}

	if !s.hasher.Verify(password, company.PasswordHash) {
		s.recordFailure(ctx, throttleKey)
		s.log.Warn().Str("company", name).Msg("authentication failed: secret mismatch")
		return "", domain.ErrSecretMismatch
	}

	s.resetThrottle(ctx, throttleKey)

	token, err := s.tokens.Issue(company.ID, company.Role, company.CompanyName, domain.VariantCompany)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("company", name).Str("role", company.Role).Msg("company authenticated")
	return token, nil
}

func (s *CompanyService) List(ctx context.Context, filter ports.CompanyFilter) (*ports.CompanyPage, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageLimit
	}

	companies, count, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.CompanyPage{
		Companies:   companies,
		TotalPages:  totalPages(count, filter.Limit),
		CurrentPage: filter.Page,
	}, nil
}

func (s *CompanyService) Get(ctx context.Context, companyName string) (*domain.Company, error) {
	return s.repo.FindByName(ctx, strings.TrimSpace(companyName))
}

func (s *CompanyService) Update(ctx context.Context, companyName string, input ports.UpdateCompanyInput) (*domain.Company, error) {
	update := ports.CompanyUpdate{Address: input.Address, Phone: input.Phone}
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

	updated, err := s.repo.Update(ctx, strings.TrimSpace(companyName), update)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("company", updated.CompanyName).Msg("company updated")
	return updated, nil
}

func (s *CompanyService) Delete(ctx context.Context, companyName string) (*domain.Company, error) {
	deleted, err := s.repo.Delete(ctx, strings.TrimSpace(companyName))
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("company", deleted.CompanyName).Msg("company deleted")
	return deleted, nil
}

func (s *CompanyService) checkThrottle(ctx context.Context, key string) error {
	if s.throttle == nil {
		return nil
	}
	blocked, err := s.throttle.TooMany(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Msg("login throttle check failed")
		return nil
	}
	if blocked {
		s.log.Warn().Str("company", key).Msg("authentication blocked: too many failed attempts")
		return domain.ErrTooManyAttempts
	}
	return nil
}

func (s *CompanyService) recordFailure(ctx context.Context, key string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, key); err != nil {
		s.log.Warn().Err(err).Msg("login throttle record failed")
	}
}

func (s *CompanyService) resetThrottle(ctx context.Context, key string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.Reset(ctx, key); err != nil {
		s.log.Warn().Err(err).Msg("login throttle reset failed")
	}
}
