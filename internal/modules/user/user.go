package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no user matches the given identifier.
var ErrNotFound = errors.New("user not found")

// User represents a storefront account, customer or admin.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	IsBlocked    bool      `json:"is_blocked"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UpdateProfileRequest is the payload for editing one's own profile.
// Empty fields are left unchanged.
type UpdateProfileRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// BlockRequest is the admin payload for blocking or unblocking an account.
type BlockRequest struct {
	IsBlocked bool `json:"is_blocked"`
}
