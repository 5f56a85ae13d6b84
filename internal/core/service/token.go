package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/companycatalog/catalog-api/internal/core/domain"
	"github.com/companycatalog/catalog-api/internal/core/ports"
)

const claimKeyUser = "username"
const claimKeyCompany = "companyName"

// TokenService issues and verifies HS256-signed identity tokens. The signing
// secret is fixed for the process lifetime; rotating it invalidates every
// outstanding token at once.
type TokenService struct {
	secret string
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &TokenService{secret: secret, ttl: ttl, now: time.Now}
}

// Issue mints a token carrying the principal's id, role and natural key.
// The natural-key claim name depends on the variant so clients can decode
// either a username or a companyName.
func (s *TokenService) Issue(id, role, naturalKey string, variant domain.Variant) (string, error) {
	if s.secret == "" {
		return "", domain.ErrNoSigningSecret
	}

	keyClaim := claimKeyUser
	if variant == domain.VariantCompany {
		keyClaim = claimKeyCompany
	}

	issuedAt := s.now().UTC()
	claims := jwt.MapClaims{
		"id":     id,
		"role":   role,
		keyClaim: naturalKey,
		"iat":    issuedAt.Unix(),
		"exp":    issuedAt.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}

// Verify checks signature and expiry and recovers the claims. Expiry is
// reported as domain.ErrTokenExpired; every other failure, including an
// unexpected signing algorithm, collapses to domain.ErrInvalidToken.
func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	if s.secret == "" {
		return nil, domain.ErrNoSigningSecret
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}
	if !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	id, _ := claims["id"].(string)
	role, _ := claims["role"].(string)
	naturalKey, _ := claims[claimKeyUser].(string)
	if naturalKey == "" {
		naturalKey, _ = claims[claimKeyCompany].(string)
	}

	return &ports.TokenClaims{ID: id, Role: role, NaturalKey: naturalKey}, nil
}
