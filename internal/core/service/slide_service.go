package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"
	"github.com/HafizMudassirHusain/AL-Backend/internal/core/ports"
)

// SlideService manages the storefront carousel slides.
type SlideService struct {
	repo   ports.SlideRepository
	logger zerolog.Logger
}

func NewSlideService(repo ports.SlideRepository, logger zerolog.Logger) *SlideService {
	return &SlideService{repo: repo, logger: logger}
}

func (s *SlideService) Add(ctx context.Context, slide domain.Slide) (*domain.Slide, error) {
	if slide.Text == "" || slide.Subtext == "" {
		return nil, domain.ErrValidation
	}
	return s.repo.Insert(ctx, &slide)
}

func (s *SlideService) List(ctx context.Context) ([]domain.Slide, error) {
	return s.repo.List(ctx)
}

func (s *SlideService) Update(ctx context.Context, id string, slide domain.Slide) (*domain.Slide, error) {
	if slide.Text == "" || slide.Subtext == "" {
		return nil, domain.ErrValidation
	}
	return s.repo.Update(ctx, id, slide)
}

func (s *SlideService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("slide_id", id).Msg("slide deleted")
	return nil
}
