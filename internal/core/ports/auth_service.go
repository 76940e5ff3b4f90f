package ports

import (
	"context"

	"github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"
)

// AuthService handles registration and login. Register takes the requested
// role as a wire string; an empty role defaults to customer.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
