package middleware

import (
	"errors"
	"net/http"
	"strings"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and resolves the principal.
// Roles are re-read from the database rather than trusted from the claim,
// so revocations take effect without waiting for token expiry.
func AuthMiddleware(tokens *token.Service, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Authorization header with bearer token required")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			if errors.Is(err, token.ErrTokenExpired) {
				response.Error(c, http.StatusUnauthorized, "Token expired")
			} else {
				response.Error(c, http.StatusUnauthorized, "Invalid token")
			}
			c.Abort()
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found")
			c.Abort()
			return
		}
		if !user.Enabled {
			response.Error(c, http.StatusUnauthorized, "Account is disabled")
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUsername), user.Username)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRoles), user.Roles)

		c.Next()
	}
}

// PrincipalRoles returns the authenticated caller's roles from the
// request context.
func PrincipalRoles(c *gin.Context) []string {
	value, exists := c.Get(string(domain.KeyUserRoles))
	if !exists {
		return nil
	}
	roles, _ := value.([]string)
	return roles
}
