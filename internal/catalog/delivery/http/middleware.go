package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/divinelits/storefront/pkg/auth"
	"github.com/divinelits/storefront/pkg/logger"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
	EmailKey    contextKey = "email"
	RoleKey     contextKey = "role"
)

// AuthMiddleware validates the JWT bearer token locally
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := authenticate(w, r)
		if !ok {
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, EmailKey, claims.Email)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// AdminMiddleware restricts a route to the configured admin emails
func AdminMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		email, _ := r.Context().Value(EmailKey).(string)
		if !auth.IsAdminEmail(email) {
			logger.Logger.Warn().
				Str("email", email).
				Msg("Admin access denied")
			respondError(w, http.StatusForbidden, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func authenticate(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		logger.Logger.Warn().Msg("Missing authorization header")
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		logger.Logger.Warn().Msg("Invalid authorization header format")
		respondError(w, http.StatusUnauthorized, "Invalid authorization header format")
		return nil, false
	}

	claims, err := auth.ValidateToken(parts[1])
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Invalid token")
		respondError(w, http.StatusUnauthorized, "Invalid token")
		return nil, false
	}

	return claims, true
}

// Helper function for error responses
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{
		Success: false,
		Error:   message,
	})
}
