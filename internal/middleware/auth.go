package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/models"
	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/utils"
)

type contextKey string

const UserContextKey contextKey = "user"

// roleRank orders the access roles; higher implies every lower role's
// permissions.
var roleRank = map[string]int{
	models.RoleOutput: 1,
	models.RoleInput:  2,
	models.RoleMaster: 3,
}

// RoleAllows reports whether role grants at least the permissions of min.
func RoleAllows(role, min string) bool {
	return roleRank[role] >= roleRank[min]
}

// Auth verifies JWT tokens and stores the claims in the request context
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			// Bearer token
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Invalid authorization header format", http.StatusUnauthorized)
				return
			}

			claims, err := utils.ValidateToken(parts[1], secret)
			if err != nil {
				http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a handler behind a minimum role. Must run after Auth.
func RequireRole(min string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := ClaimString(r.Context(), "role")
			if !RoleAllows(role, min) {
				http.Error(w, "Insufficient role", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClaimString pulls one string claim of the authenticated user from ctx.
func ClaimString(ctx context.Context, key string) (string, bool) {
	claims, ok := ctx.Value(UserContextKey).(jwt.MapClaims)
	if !ok {
		return "", false
	}
	v, ok := claims[key].(string)
	return v, ok
}
