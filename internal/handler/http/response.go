package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainErrors "github.com/talentforge/jobboard-service/internal/domain/errors"
)

// ResponseError is the error envelope returned by the API.
type ResponseError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ResponseSuccess is the success envelope returned by the API.
type ResponseSuccess struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// RespondWithError sends an error response and logs it.
func RespondWithError(c *gin.Context, statusCode int, message string, errorCode string, logger *zap.Logger) {
	logger.Warn("api error response",
		zap.Int("status_code", statusCode),
		zap.String("error_message", message),
		zap.String("error_code", errorCode),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)

	c.JSON(statusCode, ResponseError{
		Error: message,
		Code:  errorCode,
	})
}

// RespondWithSuccess sends a success envelope with a message and data.
func RespondWithSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, ResponseSuccess{
		Message: message,
		Data:    data,
	})
}

// RespondWithData sends a raw data response.
func RespondWithData(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// errorStatus maps a domain error to its HTTP status and stable error code.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domainErrors.ErrUserNotFound),
		errors.Is(err, domainErrors.ErrProfileNotFound),
		errors.Is(err, domainErrors.ErrCareerHistoryNotFound),
		errors.Is(err, domainErrors.ErrCompanyNotFound),
		errors.Is(err, domainErrors.ErrJobNotFound),
		errors.Is(err, domainErrors.ErrApplicationNotFound),
		errors.Is(err, domainErrors.ErrEngagementNotFound),
		errors.Is(err, domainErrors.ErrNotificationNotFound),
		errors.Is(err, domainErrors.ErrBlogPostNotFound):
		return http.StatusNotFound, "not_found"

	case errors.Is(err, domainErrors.ErrEmailExists),
		errors.Is(err, domainErrors.ErrDuplicateApplication),
		errors.Is(err, domainErrors.ErrSlugExists),
		errors.Is(err, domainErrors.ErrInvalidStatusTransition),
		errors.Is(err, domainErrors.ErrConflict):
		return http.StatusConflict, "conflict"

	case errors.Is(err, domainErrors.ErrInvalidRole),
		errors.Is(err, domainErrors.ErrInvalidApplicationStatus),
		errors.Is(err, domainErrors.ErrInvalidEngagement),
		errors.Is(err, domainErrors.ErrEmptyComment):
		return http.StatusBadRequest, "bad_request"

	case errors.Is(err, domainErrors.ErrJobNotVisible),
		errors.Is(err, domainErrors.ErrCompanyNotApproved):
		return http.StatusUnprocessableEntity, "not_allowed"

	case errors.Is(err, domainErrors.ErrWrongPassword),
		errors.Is(err, domainErrors.ErrUserInactive),
		errors.Is(err, domainErrors.ErrUnauthorized),
		errors.Is(err, domainErrors.ErrInvalidToken),
		errors.Is(err, domainErrors.ErrExpiredToken):
		return http.StatusUnauthorized, "unauthorized"

	case errors.Is(err, domainErrors.ErrForbidden):
		return http.StatusForbidden, "forbidden"

	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// respondDomainError translates a service error into the API error envelope.
// Internal errors are masked; everything else carries its own message.
func respondDomainError(c *gin.Context, err error, logger *zap.Logger) {
	status, code := errorStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("internal error", zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method))
		message = "Internal server error"
	}
	c.JSON(status, ResponseError{Error: message, Code: code})
}
