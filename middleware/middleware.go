package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/carlosjramirezg1979/InProject/logging"
	"github.com/carlosjramirezg1979/InProject/utils"
)

type contextKey string

// ManagerIDKey carries the authenticated manager's id through the
// request context.
const ManagerIDKey contextKey = "managerID"

// ManagerIDFromContext returns the authenticated manager id set by
// JWTAuthMiddleware.
func ManagerIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ManagerIDKey).(string)
	return id
}

func JWTAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logging.Logger.Warnf("Event ID: JWT_AUTH_MISSING_HEADER, Description: Authorization header missing for request to %s %s", r.Method, r.URL.Path)
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenStr)
		if err != nil {
			logging.Logger.Warnf("Event ID: JWT_AUTH_INVALID_TOKEN, Description: Invalid token provided for request to %s %s: %v", r.Method, r.URL.Path, err)
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ManagerIDKey, claims.ManagerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
