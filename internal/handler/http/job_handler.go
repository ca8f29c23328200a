package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentforge/jobboard-service/internal/domain/models"
	"github.com/talentforge/jobboard-service/internal/handler/http/middleware"
	"github.com/talentforge/jobboard-service/internal/infrastructure/security"
	"github.com/talentforge/jobboard-service/internal/service"
)

// JobHandler exposes the posting surface: public browsing plus the
// employer's own postings.
type JobHandler struct {
	jobs   *service.JobService
	users  *service.UserService
	logger *zap.Logger
}

func NewJobHandler(jobs *service.JobService, users *service.UserService, logger *zap.Logger) *JobHandler {
	return &JobHandler{jobs: jobs, users: users, logger: logger}
}

// ListPublic handles GET /api/v1/jobs.
func (h *JobHandler) ListPublic(c *gin.Context) {
	var filter models.JobFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error(), "bad_request", h.logger)
		return
	}

	page, err := h.jobs.ListPublic(c.Request.Context(), filter)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, page)
}

// Get handles GET /api/v1/jobs/:id. The route is public; a bearer token, if
// present, lets owners and admins see their hidden postings.
func (h *JobHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid job id", "bad_request", h.logger)
		return
	}

	job, err := h.jobs.Get(c.Request.Context(), id, h.viewer(c))
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, job)
}

// viewer reconstructs the caller identity when claims are present. Unlike
// the protected routes, the public job route is served without a token too.
func (h *JobHandler) viewer(c *gin.Context) *models.User {
	value, ok := c.Get(middleware.GinContextClaimsKey)
	if !ok {
		return nil
	}
	claims, ok := value.(*security.Claims)
	if !ok {
		return nil
	}
	return &models.User{ID: claims.UserID, Email: claims.Email, Role: claims.Role}
}

// Create handles POST /api/v1/jobs.
func (h *JobHandler) Create(c *gin.Context) {
	employerID, _ := middleware.UserIDFromContext(c)

	var req models.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), "bad_request", h.logger)
		return
	}

	job, err := h.jobs.Create(c.Request.Context(), employerID, req)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusCreated, job)
}

// Update handles PUT /api/v1/jobs/:id.
func (h *JobHandler) Update(c *gin.Context) {
	employerID, _ := middleware.UserIDFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid job id", "bad_request", h.logger)
		return
	}

	var req models.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), "bad_request", h.logger)
		return
	}

	job, err := h.jobs.Update(c.Request.Context(), id, employerID, req)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, job)
}

// ListMine handles GET /api/v1/jobs/mine.
func (h *JobHandler) ListMine(c *gin.Context) {
	employerID, _ := middleware.UserIDFromContext(c)

	jobs, err := h.jobs.ListByEmployer(c.Request.Context(), employerID)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, jobs)
}

// Delete handles DELETE /api/v1/jobs/:id.
func (h *JobHandler) Delete(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)
	role, _ := middleware.RoleFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid job id", "bad_request", h.logger)
		return
	}

	if err := h.jobs.Delete(c.Request.Context(), id, userID, role == models.RoleSuperAdmin); err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetApproved handles PATCH /api/v1/admin/jobs/:id/approval.
func (h *JobHandler) SetApproved(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid job id", "bad_request", h.logger)
		return
	}

	var req struct {
		Approved *bool `json:"approved" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), "bad_request", h.logger)
		return
	}

	job, err := h.jobs.SetApproved(c.Request.Context(), id, *req.Approved)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, job)
}
