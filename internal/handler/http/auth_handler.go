package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/talentforge/jobboard-service/internal/domain/models"
	"github.com/talentforge/jobboard-service/internal/service"
)

// AuthHandler exposes registration and login.
type AuthHandler struct {
	auth   *service.AuthService
	logger *zap.Logger
}

func NewAuthHandler(auth *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), "bad_request", h.logger)
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}

	RespondWithSuccess(c, http.StatusCreated, "Registration successful", user)
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), "bad_request", h.logger)
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}

	RespondWithData(c, http.StatusOK, resp)
}
