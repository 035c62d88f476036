package middleware

import (
	"fmt"
	"net/http"

	"github.com/UserShri98/employee-system/internal/domain/user"
	"github.com/UserShri98/employee-system/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireRoles allows the request through only when the token's role is
// one of the given roles.
func RequireRoles(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			role := user.Role(roleStr)
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, fmt.Sprintf("Access denied for role '%s'", role))
		})
	}
}
