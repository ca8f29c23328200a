package models

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest is the payload for account registration.
type RegisterRequest struct {
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=8"`
	FullName string   `json:"full_name" binding:"required"`
	Role     UserRole `json:"role" binding:"required"`
}

// LoginRequest is the payload for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token and its subject.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        *User     `json:"user"`
}

// UpdateProfileRequest is the payload for the profile-edit flow.
type UpdateProfileRequest struct {
	Headline        string   `json:"headline"`
	Bio             string   `json:"bio"`
	Phone           string   `json:"phone"`
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years" binding:"min=0"`
}

// CareerHistoryRequest is the payload for a career history entry.
type CareerHistoryRequest struct {
	CompanyName string     `json:"company_name" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	StartDate   time.Time  `json:"start_date" binding:"required"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `json:"description"`
}

// CompanyRequest is the payload for creating or updating a company.
type CompanyRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Website     string   `json:"website"`
	Industries  []string `json:"industries"`
}

// JobRequest is the payload for creating or updating a posting.
type JobRequest struct {
	CompanyID   uuid.UUID  `json:"company_id" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	JobType     JobType    `json:"job_type"`
	SalaryMin   int64      `json:"salary_min"`
	SalaryMax   int64      `json:"salary_max"`
	Skills      []string   `json:"skills"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

// JobFilter narrows public job listings.
type JobFilter struct {
	Query    string  `form:"q"`
	Location string  `form:"location"`
	JobType  JobType `form:"job_type"`
	Page     int     `form:"page,default=1"`
	PerPage  int     `form:"per_page,default=20"`
}

// ApplyRequest is the payload for submitting a job application.
type ApplyRequest struct {
	CoverNote string `json:"cover_note"`
}

// StatusUpdateRequest is the payload for an application status transition.
type StatusUpdateRequest struct {
	Status ApplicationStatus `json:"status" binding:"required"`
}

// CommentRequest is the payload for a job comment.
type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// BlogPostRequest is the payload for creating or updating a blog post.
type BlogPostRequest struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Body        string `json:"body" binding:"required"`
	IsPublished bool   `json:"is_published"`
}

// DeletionSummary reports the outcome of a cascade user deletion: the deleted
// user's prior attributes plus dependent-entity counts for employers.
type DeletionSummary struct {
	DeletedUser      *User `json:"deleted_user"`
	DeletedCompanies int   `json:"deleted_companies,omitempty"`
	DeletedJobs      int   `json:"deleted_jobs,omitempty"`
}

// Page is a generic offset-paginated result envelope.
type Page[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
}
