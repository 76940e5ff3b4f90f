package ports

import (
	"context"

	"github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"
)

// UserRepository defines persistence for user accounts. Implementations must
// enforce email uniqueness and the single-super-admin invariant atomically
// (unique indexes), surfacing violations as domain.ErrUserExists and
// domain.ErrSuperAdminTaken respectively. List and FindByID never populate
// the password hash.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.User, error)
}
