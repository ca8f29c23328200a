package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentforge/jobboard-service/internal/domain/models"
	"github.com/talentforge/jobboard-service/internal/handler/http/middleware"
	"github.com/talentforge/jobboard-service/internal/service"
)

// BlogHandler exposes the public blog plus its admin authoring surface.
type BlogHandler struct {
	blog   *service.BlogService
	logger *zap.Logger
}

func NewBlogHandler(blog *service.BlogService, logger *zap.Logger) *BlogHandler {
	return &BlogHandler{blog: blog, logger: logger}
}

// ListPublished handles GET /api/v1/blog.
func (h *BlogHandler) ListPublished(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	result, err := h.blog.ListPublished(c.Request.Context(), page, perPage)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, result)
}

// GetBySlug handles GET /api/v1/blog/:slug.
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	post, err := h.blog.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, post)
}

// Create handles POST /api/v1/admin/blog.
func (h *BlogHandler) Create(c *gin.Context) {
	authorID, _ := middleware.UserIDFromContext(c)

	var req models.BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), "bad_request", h.logger)
		return
	}

	post, err := h.blog.Create(c.Request.Context(), authorID, req)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusCreated, post)
}

// Update handles PUT /api/v1/admin/blog/:id.
func (h *BlogHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid post id", "bad_request", h.logger)
		return
	}

	var req models.BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), "bad_request", h.logger)
		return
	}

	post, err := h.blog.Update(c.Request.Context(), id, req)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, post)
}

// Delete handles DELETE /api/v1/admin/blog/:id.
func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid post id", "bad_request", h.logger)
		return
	}

	if err := h.blog.Delete(c.Request.Context(), id); err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	c.Status(http.StatusNoContent)
}
