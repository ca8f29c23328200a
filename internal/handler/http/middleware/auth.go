package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domainErrors "github.com/talentforge/jobboard-service/internal/domain/errors"
	"github.com/talentforge/jobboard-service/internal/domain/models"
	"github.com/talentforge/jobboard-service/internal/infrastructure/security"
)

const (
	AuthHeaderKey  = "Authorization"
	AuthTypeBearer = "bearer"

	GinContextUserIDKey = "userID"
	GinContextEmailKey  = "email"
	GinContextRoleKey   = "role"
	GinContextClaimsKey = "claims"
)

// TokenValidator verifies an access token string.
type TokenValidator interface {
	ValidateAccessToken(tokenString string) (*security.Claims, error)
}

// AuthMiddleware authenticates requests with a bearer token and stores the
// claims in the gin context for downstream handlers.
func AuthMiddleware(tokens TokenValidator, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required", "code": "unauthorized"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != AuthTypeBearer {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer <token>", "code": "unauthorized"})
			return
		}

		claims, err := tokens.ValidateAccessToken(parts[1])
		if err != nil {
			logger.Warn("invalid access token", zap.Error(err))
			message := "Invalid token"
			if errors.Is(err, domainErrors.ErrExpiredToken) {
				message = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message, "code": "unauthorized"})
			return
		}

		c.Set(GinContextClaimsKey, claims)
		c.Set(GinContextUserIDKey, claims.UserID)
		c.Set(GinContextEmailKey, claims.Email)
		c.Set(GinContextRoleKey, claims.Role)

		c.Next()
	}
}

// OptionalAuthMiddleware parses a bearer token when one is present but never
// rejects the request. Public routes use it so owners and admins get their
// extended view of a resource.
func OptionalAuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.ToLower(parts[0]) == AuthTypeBearer {
			if claims, err := tokens.ValidateAccessToken(parts[1]); err == nil {
				c.Set(GinContextClaimsKey, claims)
				c.Set(GinContextUserIDKey, claims.UserID)
				c.Set(GinContextEmailKey, claims.Email)
				c.Set(GinContextRoleKey, claims.Role)
			}
		}
		c.Next()
	}
}

// UserIDFromContext returns the authenticated user's id.
func UserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, ok := c.Get(GinContextUserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

// RoleFromContext returns the authenticated user's role.
func RoleFromContext(c *gin.Context) (models.UserRole, bool) {
	value, ok := c.Get(GinContextRoleKey)
	if !ok {
		return "", false
	}
	role, ok := value.(models.UserRole)
	return role, ok
}
