package auth

import (
	"context"
	"errors"

	"github.com/fightwisdom/storefront-backend/internal/modules/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrAccountBlocked     = errors.New("account is blocked")
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	Register(ctx context.Context, name, email, password string) (string, *user.User, error)
	Login(ctx context.Context, email, password string) (string, *user.User, error)
}
