package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidRole        = errors.New("invalid role")
	ErrValidation         = errors.New("invalid input")
	ErrForbidden          = errors.New("access forbidden")

	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrSuperAdminTaken = errors.New("a super-admin already exists")
	ErrSelfDelete      = errors.New("cannot delete own account")
	ErrSuperAdminFixed = errors.New("cannot delete a super-admin")

	ErrOrderNotFound = errors.New("order not found")
	ErrSlideNotFound = errors.New("slide not found")
)
