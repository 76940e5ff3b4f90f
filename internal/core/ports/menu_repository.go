package ports

import (
	"context"

	"github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"
)

// MenuRepository defines persistence for menu items.
type MenuRepository interface {
	Insert(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	List(ctx context.Context) ([]domain.MenuItem, error)
}

// MenuService exposes menu catalog operations.
type MenuService interface {
	Add(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
	List(ctx context.Context) ([]domain.MenuItem, error)
}
