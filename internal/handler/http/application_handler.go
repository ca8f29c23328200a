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

// ApplicationHandler exposes application submission and management.
type ApplicationHandler struct {
	applications *service.ApplicationService
	logger       *zap.Logger
}

func NewApplicationHandler(applications *service.ApplicationService, logger *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, logger: logger}
}

// Apply handles POST /api/v1/jobs/:id/applications.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	seekerID, _ := middleware.UserIDFromContext(c)

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid job id", "bad_request", h.logger)
		return
	}

	var req models.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), "bad_request", h.logger)
		return
	}

	app, err := h.applications.Apply(c.Request.Context(), jobID, seekerID, req)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusCreated, app)
}

// ListForJob handles GET /api/v1/jobs/:id/applications.
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	employerID, _ := middleware.UserIDFromContext(c)

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid job id", "bad_request", h.logger)
		return
	}

	apps, err := h.applications.ListForJob(c.Request.Context(), jobID, employerID)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, apps)
}

// ListMine handles GET /api/v1/applications/mine.
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	seekerID, _ := middleware.UserIDFromContext(c)

	apps, err := h.applications.ListMine(c.Request.Context(), seekerID)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, apps)
}

// UpdateStatus handles PATCH /api/v1/applications/:id/status.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	employerID, _ := middleware.UserIDFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid application id", "bad_request", h.logger)
		return
	}

	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), "bad_request", h.logger)
		return
	}

	app, err := h.applications.UpdateStatus(c.Request.Context(), id, employerID, req.Status)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, app)
}
