package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/talentforge/jobboard-service/internal/config"
	"github.com/talentforge/jobboard-service/internal/domain/models"
	"github.com/talentforge/jobboard-service/internal/infrastructure/security"
)

func newTestRouter(t *testing.T) (*gin.Engine, *security.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService, err := security.NewJWTService(config.JWTConfig{
		Secret:         "test-secret",
		AccessTokenTTL: time.Hour,
		Issuer:         "test",
	})
	require.NoError(t, err)

	router := gin.New()
	router.GET("/protected", AuthMiddleware(jwtService, zap.NewNop()), func(c *gin.Context) {
		userID, _ := UserIDFromContext(c)
		role, _ := RoleFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": role})
	})
	router.GET("/admin", AuthMiddleware(jwtService, zap.NewNop()), RequireRole(models.RoleSuperAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, jwtService
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	router, jwtService := newTestRouter(t)
	user := models.NewUser("sam@example.com", "hash", "Sam Seeker", models.RoleJobSeeker)
	token, _, err := jwtService.IssueAccessToken(user)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.ID.String())
}

func TestRequireRole_Forbidden(t *testing.T) {
	router, jwtService := newTestRouter(t)
	user := models.NewUser("sam@example.com", "hash", "Sam Seeker", models.RoleJobSeeker)
	token, _, err := jwtService.IssueAccessToken(user)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_Allowed(t *testing.T) {
	router, jwtService := newTestRouter(t)
	admin := models.NewUser("root@example.com", "hash", "Ada Admin", models.RoleSuperAdmin)
	token, _, err := jwtService.IssueAccessToken(admin)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
