// Package errors defines the sentinel errors shared across the service.
// Storage and transport layers translate their own failures into these so
// the rest of the code can branch with errors.Is.
package errors

import "errors"

var (
	// Accounts.
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailExists   = errors.New("email already registered")
	ErrInvalidRole   = errors.New("invalid user role")
	ErrUserInactive  = errors.New("user is inactive")
	ErrWrongPassword = errors.New("wrong password")

	// Profiles.
	ErrProfileNotFound       = errors.New("profile not found")
	ErrCareerHistoryNotFound = errors.New("career history entry not found")

	// Companies.
	ErrCompanyNotFound    = errors.New("company not found")
	ErrCompanyNotApproved = errors.New("company is not approved")

	// Jobs.
	ErrJobNotFound   = errors.New("job not found")
	ErrJobNotVisible = errors.New("job is not visible")

	// Applications.
	ErrApplicationNotFound      = errors.New("application not found")
	ErrDuplicateApplication     = errors.New("already applied to this job")
	ErrInvalidStatusTransition  = errors.New("invalid application status transition")
	ErrInvalidApplicationStatus = errors.New("invalid application status")

	// Engagements.
	ErrEngagementNotFound = errors.New("engagement not found")
	ErrInvalidEngagement  = errors.New("invalid engagement kind")
	ErrEmptyComment       = errors.New("comment content is empty")

	// Notifications.
	ErrNotificationNotFound = errors.New("notification not found")

	// Blog.
	ErrBlogPostNotFound = errors.New("blog post not found")
	ErrSlugExists       = errors.New("slug already in use")

	// Auth and transport.
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")

	// Generic.
	ErrConflict = errors.New("conflict")
	ErrInternal = errors.New("internal error")
)
