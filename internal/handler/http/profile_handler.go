package http

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentforge/jobboard-service/internal/domain/models"
	"github.com/talentforge/jobboard-service/internal/handler/http/middleware"
	"github.com/talentforge/jobboard-service/internal/service"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// ProfileHandler exposes the job-seeker profile surface.
type ProfileHandler struct {
	profiles *service.ProfileService
	logger   *zap.Logger
}

func NewProfileHandler(profiles *service.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, logger: logger}
}

// Get handles GET /api/v1/profiles/me.
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)

	profile, err := h.profiles.Get(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, profile)
}

// Update handles PUT /api/v1/profiles/me.
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), "bad_request", h.logger)
		return
	}

	profile, err := h.profiles.Update(c.Request.Context(), userID, req)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, profile)
}

// UploadResume handles POST /api/v1/profiles/me/resume.
func (h *ProfileHandler) UploadResume(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)

	data, ext, contentType, ok := readUpload(c, h.logger)
	if !ok {
		return
	}

	profile, err := h.profiles.UploadResume(c.Request.Context(), userID, data, ext, contentType)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, profile)
}

// AddCareerEntry handles POST /api/v1/profiles/me/career.
func (h *ProfileHandler) AddCareerEntry(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)

	var req models.CareerHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), "bad_request", h.logger)
		return
	}

	entry, err := h.profiles.AddCareerEntry(c.Request.Context(), userID, req)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusCreated, entry)
}

// ListCareer handles GET /api/v1/profiles/me/career.
func (h *ProfileHandler) ListCareer(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)

	entries, err := h.profiles.ListCareer(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, entries)
}

// DeleteCareerEntry handles DELETE /api/v1/profiles/me/career/:id.
func (h *ProfileHandler) DeleteCareerEntry(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid entry id", "bad_request", h.logger)
		return
	}

	if err := h.profiles.DeleteCareerEntry(c.Request.Context(), userID, entryID); err != nil {
		respondDomainError(c, err, h.logger)
		return
	}
	c.Status(http.StatusNoContent)
}

// readUpload pulls a multipart "file" part into memory and returns its
// bytes, extension and content type.
func readUpload(c *gin.Context, logger *zap.Logger) ([]byte, string, string, bool) {
	header, err := c.FormFile("file")
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Multipart field \"file\" is required", "bad_request", logger)
		return nil, "", "", false
	}
	if header.Size > maxUploadBytes {
		RespondWithError(c, http.StatusRequestEntityTooLarge, "File too large", "bad_request", logger)
		return nil, "", "", false
	}

	file, err := header.Open()
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Cannot read uploaded file", "bad_request", logger)
		return nil, "", "", false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil || int64(len(data)) > maxUploadBytes {
		RespondWithError(c, http.StatusBadRequest, "Cannot read uploaded file", "bad_request", logger)
		return nil, "", "", false
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return data, ext, contentType, true
}
