package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"
)

// stubUserRepo is an in-memory repository honoring the store contract:
// unique email, at most one super-admin, and hash-free read paths.
type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
		if user.Role == domain.RoleSuperAdmin && u.Role == domain.RoleSuperAdmin {
			return nil, domain.ErrSuperAdminTaken
		}
	}

	r.seq++
	stored := cloneUser(user)
	stored.ID = fmt.Sprintf("u%d", r.seq)
	r.users[stored.ID] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := cloneUser(u)
	clone.PasswordHash = ""
	return clone, nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id string, role domain.Role) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if role == domain.RoleSuperAdmin {
		for otherID, other := range r.users {
			if otherID != id && other.Role == domain.RoleSuperAdmin {
				return nil, domain.ErrSuperAdminTaken
			}
		}
	}
	u.Role = role
	clone := cloneUser(u)
	clone.PasswordHash = ""
	return clone, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		clone.PasswordHash = ""
		out = append(out, clone)
	}
	return out, nil
}

func newAuthService(repo *stubUserRepo) *AuthService {
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(repo, tokens, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret1", "")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleCustomer {
		t.Fatalf("expected default role customer, got %s", user.Role)
	}
	if user.PasswordHash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	cases := []struct {
		name, email, password string
	}{
		{"", "a@x.com", "secret1"},
		{"  ", "a@x.com", "secret1"},
		{"A", "not-an-email", "secret1"},
		{"A", "a@x.com", "short"},
	}
	for _, tc := range cases {
		if _, err := svc.Register(context.Background(), tc.name, tc.email, tc.password, ""); err != domain.ErrValidation {
			t.Fatalf("Register(%q,%q,%q): expected ErrValidation, got %v", tc.name, tc.email, tc.password, err)
		}
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "A", "a@x.com", "secret1", "owner"); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "A", "a@x.com", "secret1", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "B", "a@x.com", "secret2", ""); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_SecondSuperAdmin(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "A", "a@x.com", "secret1", "super-admin"); err != nil {
		t.Fatalf("first super-admin register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "B", "b@x.com", "secret1", "super-admin"); err != domain.ErrSuperAdminTaken {
		t.Fatalf("expected ErrSuperAdminTaken, got %v", err)
	}
}

func TestAuthService_Register_LegacySuperAdminSpelling(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	user, err := svc.Register(context.Background(), "A", "a@x.com", "secret1", "superadmin")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleSuperAdmin {
		t.Fatalf("expected normalized super-admin role, got %s", user.Role)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), "Carol", "carol@example.com", "s3cret1", "admin"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.Name != "Carol" || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := NewTokenService("secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != domain.RoleAdmin || claims.Name != "Carol" {
		t.Fatalf("claims do not match issuing user: %+v", claims)
	}
}

func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "Dave", "dave@example.com", "goodpass", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, wrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, _, noUser := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}
	if noUser != wrongPass {
		t.Fatalf("unknown email must fail identically to wrong password: %v vs %v", noUser, wrongPass)
	}
}
