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

// CompanyHandler exposes the employer company surface.
type CompanyHandler struct {
	companies *service.CompanyService
	logger    *zap.Logger
}

func NewCompanyHandler(companies *service.CompanyService, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{companies: companies, logger: logger}
}

// Create handles POST /api/v1/companies.
func (h *CompanyHandler) Create(c *gin.Context) {
	employerID, _ := middleware.UserIDFromContext(c)

	var req models.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), "bad_request", h.logger)
		return
	}

	company, err := h.companies.Create(c.Request.Context(), employerID, req)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusCreated, company)
}

// Get handles GET /api/v1/companies/:id.
func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid company id", "bad_request", h.logger)
		return
	}

	company, err := h.companies.Get(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, company)
}

// ListMine handles GET /api/v1/companies/mine.
func (h *CompanyHandler) ListMine(c *gin.Context) {
	employerID, _ := middleware.UserIDFromContext(c)

	companies, err := h.companies.ListMine(c.Request.Context(), employerID)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, companies)
}

// Update handles PUT /api/v1/companies/:id.
func (h *CompanyHandler) Update(c *gin.Context) {
	employerID, _ := middleware.UserIDFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid company id", "bad_request", h.logger)
		return
	}

	var req models.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), "bad_request", h.logger)
		return
	}

	company, err := h.companies.Update(c.Request.Context(), id, employerID, req)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, company)
}

// UploadLogo handles POST /api/v1/companies/:id/logo.
func (h *CompanyHandler) UploadLogo(c *gin.Context) {
	employerID, _ := middleware.UserIDFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid company id", "bad_request", h.logger)
		return
	}

	data, ext, contentType, ok := readUpload(c, h.logger)
	if !ok {
		return
	}

	company, err := h.companies.UploadLogo(c.Request.Context(), id, employerID, data, ext, contentType)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, company)
}

// SetApproved handles PATCH /api/v1/admin/companies/:id/approval.
func (h *CompanyHandler) SetApproved(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid company id", "bad_request", h.logger)
		return
	}

	var req struct {
		Approved *bool `json:"approved" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), "bad_request", h.logger)
		return
	}

	company, err := h.companies.SetApproved(c.Request.Context(), id, *req.Approved)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, company)
}
