package models

import (
	"time"

	"github.com/google/uuid"
)

// JobType enumerates employment types for a posting.
type JobType string

const (
	JobTypeFullTime JobType = "full_time"
	JobTypePartTime JobType = "part_time"
	JobTypeContract JobType = "contract"
	JobTypeIntern   JobType = "internship"
	JobTypeRemote   JobType = "remote"
)

// Job is a posting owned by one company. EmployerID is denormalized from the
// company so employer-scoped queries avoid a join.
type Job struct {
	ID          uuid.UUID  `json:"id"`
	CompanyID   uuid.UUID  `json:"company_id"`
	EmployerID  uuid.UUID  `json:"employer_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	JobType     JobType    `json:"job_type"`
	SalaryMin   int64      `json:"salary_min,omitempty"`
	SalaryMax   int64      `json:"salary_max,omitempty"`
	Skills      []string   `json:"skills"`
	IsApproved  bool       `json:"is_approved"`
	IsActive    bool       `json:"is_active"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewJob creates an active but not yet approved posting.
func NewJob(companyID, employerID uuid.UUID, title string) *Job {
	now := time.Now().UTC()
	return &Job{
		ID:         uuid.New(),
		CompanyID:  companyID,
		EmployerID: employerID,
		Title:      title,
		Skills:     []string{},
		IsApproved: false,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsVisible reports whether the posting is publicly listable. Both flags must
// hold; approval and activation are independent switches.
func (j *Job) IsVisible() bool {
	return j.IsApproved && j.IsActive
}

// IsExpired reports whether the posting is past its expiry date.
func (j *Job) IsExpired(now time.Time) bool {
	return j.ExpiresAt != nil && j.ExpiresAt.Before(now)
}
