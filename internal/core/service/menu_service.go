package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"
	"github.com/HafizMudassirHusain/AL-Backend/internal/core/ports"
)

// MenuService manages the menu catalog.
type MenuService struct {
	repo   ports.MenuRepository
	logger zerolog.Logger
}

func NewMenuService(repo ports.MenuRepository, logger zerolog.Logger) *MenuService {
	return &MenuService{repo: repo, logger: logger}
}

func (s *MenuService) Add(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	if item.Name == "" || item.Category == "" || item.Price <= 0 {
		return nil, domain.ErrValidation
	}

	created, err := s.repo.Insert(ctx, &item)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("name", created.Name).Str("category", created.Category).Msg("menu item added")
	return created, nil
}

func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	return s.repo.List(ctx)
}
