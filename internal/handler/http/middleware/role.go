package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentforge/jobboard-service/internal/domain/models"
)

// RequireRole restricts a route to the given roles. It must run after
// AuthMiddleware.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		role, ok := RoleFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "code": "unauthorized"})
			return
		}
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions", "code": "forbidden"})
			return
		}
		c.Next()
	}
}
