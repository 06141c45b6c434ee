package middleware

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

// RequireRole denies the request with Forbidden unless the principal holds
// at least one of the given roles. Composed explicitly per route group;
// must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	required := make(map[string]bool, len(roles))
	for _, role := range roles {
		required[role] = true
	}

	return func(c *gin.Context) {
		for _, role := range PrincipalRoles(c) {
			if required[role] {
				c.Next()
				return
			}
		}
		response.Error(c, http.StatusForbidden, "Insufficient role for this operation")
		c.Abort()
	}
}
