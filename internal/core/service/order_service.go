package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"
	"github.com/HafizMudassirHusain/AL-Backend/internal/core/ports"
)

// OrderService handles order placement and kitchen-side status updates.
type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger}
}

// Place stores a new order with status Pending.
func (s *OrderService) Place(ctx context.Context, order domain.Order) (*domain.Order, error) {
	if order.CustomerName == "" || order.Phone == "" || order.Address == "" || len(order.Items) == 0 {
		return nil, domain.ErrValidation
	}

	order.Status = domain.OrderPending
	order.CreatedAt = time.Now().UTC()

	created, err := s.repo.Insert(ctx, &order)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("order_id", created.ID).Float64("total", created.TotalPrice).Msg("order placed")
	return created, nil
}

// List returns all orders, newest first.
func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

// UpdateStatus moves an order to a new status.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	st := domain.OrderStatus(status)
	if !st.Valid() {
		return nil, domain.ErrValidation
	}

	updated, err := s.repo.UpdateStatus(ctx, id, st)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("order_id", id).Str("status", string(st)).Msg("order status updated")
	return updated, nil
}
