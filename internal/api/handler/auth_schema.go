package handler

import "github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"omitempty,oneof=customer admin super-admin superadmin"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

type verifyResponse struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type userResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}
