package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"
	"github.com/HafizMudassirHusain/AL-Backend/internal/core/ports"
)

// UserService implements the super-admin account management operations.
// Uniqueness of the super-admin role is enforced in the store (unique
// partial index); the self-protection rules live here because they are
// business invariants, not storage constraints.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// List returns all users. Password hashes are never populated by the
// repository's read path.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// ChangeRole sets the target user's role. Only a super-admin may call this;
// promoting to super-admin fails with ErrSuperAdminTaken when another user
// already holds the role.
func (s *UserService) ChangeRole(ctx context.Context, actor domain.Identity, targetID, role string) (*domain.User, error) {
	if actor.Role != domain.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}

	r, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateRole(ctx, targetID, r)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("actor", actor.ID).
		Str("target", updated.ID).
		Str("role", string(updated.Role)).
		Msg("role changed")
	return updated, nil
}

// Delete removes the target account. Only a super-admin may call this, it
// cannot delete itself, and a super-admin account cannot be deleted at all.
func (s *UserService) Delete(ctx context.Context, actor domain.Identity, targetID string) error {
	if actor.Role != domain.RoleSuperAdmin {
		return domain.ErrForbidden
	}
	if targetID == actor.ID {
		return domain.ErrSelfDelete
	}

	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target.Role == domain.RoleSuperAdmin {
		return domain.ErrSuperAdminFixed
	}

	if err := s.repo.Delete(ctx, targetID); err != nil {
		return err
	}

	s.logger.Info().Str("actor", actor.ID).Str("target", targetID).Msg("user deleted")
	return nil
}
