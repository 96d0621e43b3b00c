package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/nickmonteleone/sharebandb-backend/internal/service"
)

type contextKey string

const userKey contextKey = "token_user"

// Auth requires a valid "Authorization: Bearer <token>" header and stores
// the token's identity in the request context.
func Auth(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w)
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")

			user, ok := auth.VerifyToken(tokenStr)
			if !ok {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"unauthorized"}`))
}

// GetUser extracts the authenticated identity from the request context.
func GetUser(ctx context.Context) *service.TokenUser {
	return ctx.Value(userKey).(*service.TokenUser)
}
