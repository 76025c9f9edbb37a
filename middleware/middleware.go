// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/maina2/pollpro/auth"
	"github.com/maina2/pollpro/models"
)

type contextKey string

const identityKey contextKey = "identity"

// WithLogging wraps a handler with request logging
func WithLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Log request
		slog.Info("request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
		)

		// Call the next handler
		next(w, r)

		// Log completion
		duration := time.Since(start)
		slog.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", duration.Milliseconds(),
		)
	}
}

// RequireAuth rejects requests without a valid bearer token and injects
// the caller's identity into the request context.
func RequireAuth(jwtSecret string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := bearerIdentity(r, jwtSecret)
		if !ok {
			ErrorResponse(w, http.StatusUnauthorized, "Valid bearer token required")
			return
		}
		next(w, r.WithContext(WithIdentity(r.Context(), identity)))
	}
}

// OptionalAuth injects the caller's identity when a valid bearer token is
// present and proceeds anonymously otherwise.
func OptionalAuth(jwtSecret string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := bearerIdentity(r, jwtSecret)
		if !ok {
			identity = models.Anonymous
		}
		next(w, r.WithContext(WithIdentity(r.Context(), identity)))
	}
}

func bearerIdentity(r *http.Request, jwtSecret string) (models.Identity, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return models.Anonymous, false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return models.Anonymous, false
	}
	identity, err := auth.ValidateToken(parts[1], jwtSecret)
	if err != nil {
		return models.Anonymous, false
	}
	return identity, true
}

// WithIdentity returns a context carrying the caller's identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFrom extracts the caller's identity from the request context.
// Returns the anonymous identity when none was set.
func IdentityFrom(ctx context.Context) models.Identity {
	if identity, ok := ctx.Value(identityKey).(models.Identity); ok {
		return identity
	}
	return models.Anonymous
}

// JSONResponse writes a JSON response
func JSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// ErrorResponse writes a JSON error response
func ErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	JSONResponse(w, statusCode, models.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

// ParseJSONBody parses the request body into the given struct
func ParseJSONBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// CORS middleware allows cross-origin requests from the frontend
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		// Handle preflight requests
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
