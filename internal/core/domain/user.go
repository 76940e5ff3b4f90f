package domain

import "time"

// Role is the closed set of capability levels a user account can hold.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
)

// ParseRole normalizes a wire-level role string into a Role. The legacy
// "superadmin" spelling used by old clients maps to RoleSuperAdmin.
func ParseRole(s string) (Role, error) {
	switch s {
	case string(RoleCustomer):
		return RoleCustomer, nil
	case string(RoleAdmin):
		return RoleAdmin, nil
	case string(RoleSuperAdmin), "superadmin":
		return RoleSuperAdmin, nil
	}
	return "", ErrInvalidRole
}

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Identity is the caller resolved by the auth middleware and attached to the
// request context. Role and name come from the live user record, not from
// the token snapshot.
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// TokenClaims are the identity claims carried by a session token. Role and
// name are snapshots taken at issuance; they do not track later role changes
// until the user logs in again.
type TokenClaims struct {
	UserID string
	Name   string
	Role   Role
}
