package ports

import "github.com/companycatalog/catalog-api/internal/core/domain"

// TokenClaims is the verified identity recovered from a bearer token.
type TokenClaims struct {
	ID         string
	Role       string
	NaturalKey string
}

// TokenIssuer mints signed, time-bound identity tokens.
type TokenIssuer interface {
	Issue(id, role, naturalKey string, variant domain.Variant) (string, error)
}

// TokenVerifier checks a token's signature and expiry and recovers its claims.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

// TokenService combines issuance and verification under one signing secret.
type TokenService interface {
	TokenIssuer
	TokenVerifier
}
