package ports

import "github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"

// TokenService issues and verifies signed session tokens. Verify is
// self-contained: it checks signature and expiry only, never the store.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (*domain.TokenClaims, error)
}
