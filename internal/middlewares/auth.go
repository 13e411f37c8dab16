package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-expense-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthMiddleware verifies the session cookie and binds the caller's
// principal to the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				log.Infow("authorization failed", "err", err)
				writeJSON(w, http.StatusUnauthorized, models.MessageResponse{Message: "Unauthorized!"})
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				log.Infow("authorization failed", "err", err)
				writeJSON(w, http.StatusUnauthorized, models.MessageResponse{Message: "Unauthorized!"})
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				log.Infow("authorization failed", "err", err)
				writeJSON(w, http.StatusUnauthorized, models.MessageResponse{Message: "Unauthorized!"})
				return
			}

			role := claims.Role
			if role == "" {
				role = models.RoleUser
			}

			ctx = WithPrincipal(ctx, models.Principal{UserID: userID, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin stops the request unless the bound principal is an admin.
// It must run after AuthMiddleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := GetPrincipalFromContext(r.Context())
		if !ok || !p.IsAdmin() {
			logger.FromContext(r.Context()).Infow("admin access denied", "user_id", p.UserID)
			writeJSON(w, http.StatusUnauthorized, models.MessageResponse{Message: "UNAUTHORIZED!"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

type principalKey struct{}

// WithPrincipal returns a context carrying p.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// GetPrincipalFromContext returns the principal bound by AuthMiddleware.
func GetPrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(models.Principal)
	return p, ok
}
