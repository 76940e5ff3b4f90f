package ports

import (
	"context"

	"github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"
)

// SlideRepository defines persistence for storefront slides.
type SlideRepository interface {
	Insert(ctx context.Context, slide *domain.Slide) (*domain.Slide, error)
	List(ctx context.Context) ([]domain.Slide, error)
	Update(ctx context.Context, id string, slide domain.Slide) (*domain.Slide, error)
	Delete(ctx context.Context, id string) error
}

// SlideService exposes slide management operations.
type SlideService interface {
	Add(ctx context.Context, slide domain.Slide) (*domain.Slide, error)
	List(ctx context.Context) ([]domain.Slide, error)
	Update(ctx context.Context, id string, slide domain.Slide) (*domain.Slide, error)
	Delete(ctx context.Context, id string) error
}
