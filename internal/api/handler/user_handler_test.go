package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/HafizMudassirHusain/AL-Backend/internal/api/middleware"
	"github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"
)

type stubUserService struct {
	listFn       func(ctx context.Context) ([]domain.User, error)
	changeRoleFn func(ctx context.Context, actor domain.Identity, targetID, role string) (*domain.User, error)
	deleteFn     func(ctx context.Context, actor domain.Identity, targetID string) error
}

func (s *stubUserService) List(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) ChangeRole(ctx context.Context, actor domain.Identity, targetID, role string) (*domain.User, error) {
	return s.changeRoleFn(ctx, actor, targetID, role)
}

func (s *stubUserService) Delete(ctx context.Context, actor domain.Identity, targetID string) error {
	return s.deleteFn(ctx, actor, targetID)
}

func superAdmin() domain.Identity {
	return domain.Identity{ID: "root", Name: "Hafiz", Role: domain.RoleSuperAdmin}
}

func TestUserHandler_List(t *testing.T) {
	stub := &stubUserService{
		listFn: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{
				{ID: "u1", Name: "Ali", Email: "ali@example.com", Role: domain.RoleCustomer},
				{ID: "u2", Name: "Sara", Email: "sara@example.com", Role: domain.RoleAdmin},
			}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/api/auth/users", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var users []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if _, leaked := users[0]["password"]; leaked {
		t.Fatalf("password leaked in response: %+v", users[0])
	}
}

func TestUserHandler_ChangeRole_Success(t *testing.T) {
	stub := &stubUserService{
		changeRoleFn: func(ctx context.Context, actor domain.Identity, targetID, role string) (*domain.User, error) {
			if actor.Role != domain.RoleSuperAdmin || targetID != "u1" || role != "admin" {
				t.Fatalf("unexpected args: %+v %s %s", actor, targetID, role)
			}
			return &domain.User{ID: targetID, Name: "Ali", Role: domain.RoleAdmin}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(http.MethodPut, "/api/auth/users/u1/role", `{"role":"admin"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")
	c.Set(middleware.IdentityKey, superAdmin())

	if err := handler.ChangeRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Role updated successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["role"] != "admin" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
}

func TestUserHandler_ChangeRole_Forbidden(t *testing.T) {
	stub := &stubUserService{
		changeRoleFn: func(ctx context.Context, actor domain.Identity, targetID, role string) (*domain.User, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewUserHandler(stub)

	c, _ := newTestContext(http.MethodPut, "/api/auth/users/u1/role", `{"role":"admin"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")
	c.Set(middleware.IdentityKey, domain.Identity{ID: "a1", Role: domain.RoleAdmin})

	if err := handler.ChangeRole(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserHandler_ChangeRole_MissingIdentity(t *testing.T) {
	handler := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(http.MethodPut, "/api/auth/users/u1/role", `{"role":"admin"}`)

	err := handler.ChangeRole(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 http error, got %v", err)
	}
}

func TestUserHandler_Delete_Success(t *testing.T) {
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, actor domain.Identity, targetID string) error {
			if targetID != "u1" {
				t.Fatalf("unexpected target: %s", targetID)
			}
			return nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(http.MethodDelete, "/api/auth/users/u1", "")
	c.SetParamNames("id")
	c.SetParamValues("u1")
	c.Set(middleware.IdentityKey, superAdmin())

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "User deleted successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestUserHandler_Delete_SelfDelete(t *testing.T) {
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, actor domain.Identity, targetID string) error {
			return domain.ErrSelfDelete
		},
	}
	handler := NewUserHandler(stub)

	c, _ := newTestContext(http.MethodDelete, "/api/auth/users/root", "")
	c.SetParamNames("id")
	c.SetParamValues("root")
	c.Set(middleware.IdentityKey, superAdmin())

	if err := handler.Delete(c); !errors.Is(err, domain.ErrSelfDelete) {
		t.Fatalf("expected ErrSelfDelete, got %v", err)
	}
}
