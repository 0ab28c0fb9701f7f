package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"

	"github.com/fightwisdom/storefront-backend/internal/httpx"
	"github.com/fightwisdom/storefront-backend/internal/modules/user"
)

// Middleware authenticates requests and gates admin-only routes.
type Middleware struct {
	users  user.Repository
	secret []byte
}

func NewMiddleware(users user.Repository, secret []byte) *Middleware {
	return &Middleware{users: users, secret: secret}
}

// Protect resolves the bearer token, loads the account behind it, and
// stores the caller's identity in the request context.
func (m *Middleware) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			respond(w, http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			return
		}

		claims := &jwt.StandardClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return m.secret, nil
		})
		if err != nil || !parsed.Valid {
			respond(w, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			return
		}

		u, err := m.users.GetUserByID(r.Context(), claims.Subject)
		if err != nil {
			respond(w, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			return
		}
		if u.IsBlocked {
			respond(w, http.StatusForbidden, map[string]string{"error": ErrAccountBlocked.Error()})
			return
		}

		ctx := httpx.WithIdentity(r.Context(), httpx.Identity{UserID: u.ID, IsAdmin: u.IsAdmin})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly requires an identity set by Protect with the admin flag.
func (m *Middleware) AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.IdentityFrom(r.Context())
		if !ok || !id.IsAdmin {
			respond(w, http.StatusForbidden, map[string]string{"error": "admin only"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
