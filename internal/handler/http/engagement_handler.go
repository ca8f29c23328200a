package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentforge/jobboard-service/internal/domain/models"
	"github.com/talentforge/jobboard-service/internal/handler/http/middleware"
	"github.com/talentforge/jobboard-service/internal/service"
)

// EngagementHandler exposes likes, bookmarks, favorites, interests and
// comments on postings.
type EngagementHandler struct {
	engagements *service.EngagementService
	logger      *zap.Logger
}

func NewEngagementHandler(engagements *service.EngagementService, logger *zap.Logger) *EngagementHandler {
	return &EngagementHandler{engagements: engagements, logger: logger}
}

// Toggle handles POST /api/v1/jobs/:id/engagements/:kind.
func (h *EngagementHandler) Toggle(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid job id", "bad_request", h.logger)
		return
	}
	kind := models.EngagementKind(c.Param("kind"))

	active, err := h.engagements.Toggle(c.Request.Context(), userID, jobID, kind)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, gin.H{"kind": kind, "active": active})
}

// Comment handles POST /api/v1/jobs/:id/comments.
func (h *EngagementHandler) Comment(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid job id", "bad_request", h.logger)
		return
	}

	var req models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), "bad_request", h.logger)
		return
	}

	comment, err := h.engagements.Comment(c.Request.Context(), userID, jobID, req.Content)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusCreated, comment)
}

// ListComments handles GET /api/v1/jobs/:id/comments.
func (h *EngagementHandler) ListComments(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid job id", "bad_request", h.logger)
		return
	}

	comments, err := h.engagements.ListComments(c.Request.Context(), jobID)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, comments)
}

// DeleteComment handles DELETE /api/v1/comments/:id.
func (h *EngagementHandler) DeleteComment(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)
	role, _ := middleware.RoleFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid comment id", "bad_request", h.logger)
		return
	}

	if err := h.engagements.DeleteComment(c.Request.Context(), id, userID, role == models.RoleSuperAdmin); err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListEngagedJobs handles GET /api/v1/engagements/:kind/jobs, e.g. the
// saved-jobs listing for bookmarks.
func (h *EngagementHandler) ListEngagedJobs(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)
	kind := models.EngagementKind(c.Param("kind"))

	jobs, err := h.engagements.ListEngagedJobs(c.Request.Context(), userID, kind)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, jobs)
}
