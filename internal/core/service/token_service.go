package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// jwtClaims is the wire shape of a session token.
type jwtClaims struct {
	Role string `json:"role"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 session tokens. Verification is
// self-contained: signature and expiry only, no store lookups.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl == 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the user's id plus role and name snapshots,
// valid for the configured TTL.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		Role: string(user.Role),
		Name: user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded claims.
// Any failure (malformed token, signature mismatch, elapsed expiry) is
// reported as domain.ErrInvalidToken.
func (s *TokenService) Verify(token string) (*domain.TokenClaims, error) {
	claims := &jwtClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	return &domain.TokenClaims{
		UserID: claims.Subject,
		Name:   claims.Name,
		Role:   domain.Role(claims.Role),
	}, nil
}
