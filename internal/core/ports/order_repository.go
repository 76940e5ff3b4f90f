package ports

import (
	"context"

	"github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"
)

// OrderRepository defines persistence for customer orders. List returns
// orders newest first.
type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

// OrderService exposes order placement and kitchen-side management.
type OrderService interface {
	Place(ctx context.Context, order domain.Order) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error)
}
