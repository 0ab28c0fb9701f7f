package user

import "context"

// Service defines the interface for user profile and administration logic.
type Service interface {
	GetProfile(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (*User, error)

	// Admin operations.
	ListUsers(ctx context.Context) ([]*User, error)
	DeleteUser(ctx context.Context, id string) error
	BlockUser(ctx context.Context, id string, blocked bool) (*User, error)
}
