package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentforge/jobboard-service/internal/handler/http/middleware"
	"github.com/talentforge/jobboard-service/internal/service"
)

// UserHandler exposes the current account plus admin account management.
type UserHandler struct {
	users  *service.UserService
	logger *zap.Logger
}

func NewUserHandler(users *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// Me handles GET /api/v1/users/me.
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		RespondWithError(c, http.StatusUnauthorized, "Authentication required", "unauthorized", h.logger)
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, user)
}

// DeleteMe handles DELETE /api/v1/users/me: a self-service cascade deletion.
func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		RespondWithError(c, http.StatusUnauthorized, "Authentication required", "unauthorized", h.logger)
		return
	}

	summary, err := h.users.DeleteUserCascade(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithSuccess(c, http.StatusOK, "Account deleted", summary)
}

// List handles GET /api/v1/admin/users.
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	result, err := h.users.List(c.Request.Context(), page, perPage)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, result)
}

// Get handles GET /api/v1/admin/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid user id", "bad_request", h.logger)
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, user)
}

// SetActive handles PATCH /api/v1/admin/users/:id/active.
func (h *UserHandler) SetActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid user id", "bad_request", h.logger)
		return
	}

	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), "bad_request", h.logger)
		return
	}

	user, err := h.users.SetActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, user)
}

// Delete handles DELETE /api/v1/admin/users/:id: the admin cascade deletion.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid user id", "bad_request", h.logger)
		return
	}

	summary, err := h.users.DeleteUserCascade(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithSuccess(c, http.StatusOK, "User deleted", summary)
}
