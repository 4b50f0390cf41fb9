package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/UtkarshSachan777/Glow-AI/internal/model"
)

// AuthService defines the interface for session token validation
type AuthService interface {
	ValidateToken(ctx context.Context, token string) (*model.Session, error)
}

// Auth returns a middleware that validates bearer session tokens
func Auth(authService AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				model.NewUnauthorizedError("missing or malformed authorization header").WriteJSON(w)
				return
			}

			session, err := authService.ValidateToken(r.Context(), token)
			if err != nil {
				model.NewUnauthorizedError("invalid or expired session").WriteJSON(w)
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth is like Auth but doesn't require authentication.
// It will set the session in context if a valid token is present.
func OptionalAuth(authService AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			session, err := authService.ValidateToken(r.Context(), token)
			if err != nil {
				// Invalid token, but optional so continue without auth
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// GetSession extracts the session from context
func GetSession(ctx context.Context) *model.Session {
	if session, ok := ctx.Value(SessionKey).(*model.Session); ok {
		return session
	}
	return nil
}

// GetProfileKey extracts the profile identity key from the context session.
// Registered users key by user ID, guests by session ID.
func GetProfileKey(ctx context.Context) string {
	if session := GetSession(ctx); session != nil {
		return session.ProfileKey()
	}
	return ""
}
