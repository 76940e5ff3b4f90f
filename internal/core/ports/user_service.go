package ports

import (
	"context"

	"github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"
)

// UserService covers the super-admin account management operations.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	ChangeRole(ctx context.Context, actor domain.Identity, targetID, role string) (*domain.User, error)
	Delete(ctx context.Context, actor domain.Identity, targetID string) error
}
