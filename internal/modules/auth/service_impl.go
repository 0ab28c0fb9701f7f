package auth

import (
	"context"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fightwisdom/storefront-backend/internal/modules/user"
)

const tokenLifetime = 30 * 24 * time.Hour

type service struct {
	users  user.Repository
	secret []byte
}

// NewService creates a new auth service.
func NewService(users user.Repository, secret []byte) Service {
	return &service{users: users, secret: secret}
}

func (s *service) Register(ctx context.Context, name, email, password string) (string, *user.User, error) {
	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return "", nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	u := &user.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		return "", nil, err
	}

	token, err := s.issueToken(u)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, *user.User, error) {
	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if u.IsBlocked {
		return "", nil, ErrAccountBlocked
	}

	token, err := s.issueToken(u)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *service) issueToken(u *user.User) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   u.ID.String(),
		ExpiresAt: time.Now().Add(tokenLifetime).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
