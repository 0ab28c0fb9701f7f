package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fightwisdom/storefront-backend/internal/modules/user"
)

type memoryUsers struct {
	byID    map[string]*user.User
	byEmail map[string]*user.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byID: map[string]*user.User{}, byEmail: map[string]*user.User{}}
}

func (m *memoryUsers) CreateUser(ctx context.Context, u *user.User) error {
	m.byID[u.ID.String()] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *memoryUsers) GetUserByID(ctx context.Context, id string) (*user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (m *memoryUsers) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (m *memoryUsers) UpdateUser(ctx context.Context, u *user.User) error { return nil }

func (m *memoryUsers) ListUsers(ctx context.Context) ([]*user.User, error) { return nil, nil }

func (m *memoryUsers) DeleteUser(ctx context.Context, id string) error { return nil }

func (m *memoryUsers) SetBlocked(ctx context.Context, id string, blocked bool) (*user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	u.IsBlocked = blocked
	return u, nil
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	users := newMemoryUsers()
	svc := NewService(users, []byte("test-secret"))

	token, u, err := svc.Register(ctx, "Asha", "asha@example.com", "s3cret!pass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "s3cret!pass", u.PasswordHash, "password must be hashed")

	t.Run("duplicate email", func(t *testing.T) {
		_, _, err := svc.Register(ctx, "Asha Again", "asha@example.com", "whatever")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("login with correct password", func(t *testing.T) {
		token, got, err := svc.Login(ctx, "asha@example.com", "s3cret!pass")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, u.ID, got.ID)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "asha@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("login with unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@example.com", "s3cret!pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("blocked account cannot log in", func(t *testing.T) {
		_, err := users.SetBlocked(ctx, u.ID.String(), true)
		require.NoError(t, err)
		_, _, err = svc.Login(ctx, "asha@example.com", "s3cret!pass")
		assert.ErrorIs(t, err, ErrAccountBlocked)
	})
}
