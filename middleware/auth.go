package middleware

import (
	"net/http"
	"strings"

	"github.com/orgmatch/orgmatch/security"
	"github.com/orgmatch/orgmatch/utils"
)

// AuthMiddleware validates the Bearer token and injects the caller's
// organisation id into the request context. Handlers read it back with
// utils.GetOrgID.
func AuthMiddleware(tokens *security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Validate(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				utils.Warn(r.Context(), "rejected token", map[string]interface{}{
					"error": err.Error(),
				})
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := utils.WithOrgID(r.Context(), claims.OrgID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
