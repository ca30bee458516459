package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/partnerlink/partnerlink/internal/domain"
	"github.com/partnerlink/partnerlink/internal/repository"
)

type contextKey string

const (
	// ContextKeyUser is the key for storing the operator in request context.
	ContextKeyUser contextKey = "user"
)

// UserFinder resolves bearer tokens to operators.
type UserFinder interface {
	GetByToken(ctx context.Context, token string) (*domain.User, error)
}

var _ UserFinder = (*repository.UserRepository)(nil)

// AuthMiddleware handles Bearer token authentication.
type AuthMiddleware struct {
	users UserFinder
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(users UserFinder) *AuthMiddleware {
	return &AuthMiddleware{users: users}
}

// Authenticate validates the Bearer token and adds the user to request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "missing authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			http.Error(w, "invalid authorization header format", http.StatusUnauthorized)
			return
		}

		token := strings.TrimSpace(parts[1])
		if token == "" {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}

		user, err := m.users.GetByToken(r.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				http.Error(w, domain.ErrInvalidToken.Error(), http.StatusUnauthorized)
				return
			}
			slog.Error("failed to resolve token", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		if !user.IsActive {
			http.Error(w, domain.ErrUserInactive.Error(), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyUser, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserFromContext retrieves the authenticated user from request context.
func GetUserFromContext(ctx context.Context) (*domain.User, error) {
	user, ok := ctx.Value(ContextKeyUser).(*domain.User)
	if !ok || user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
