package models

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is the finite progression of a job application.
type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "applied"
	StatusUnderReview ApplicationStatus = "under_review"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRejected    ApplicationStatus = "rejected"
	StatusHired       ApplicationStatus = "hired"
)

// ValidApplicationStatus reports whether s is a recognized status value.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case StatusApplied, StatusUnderReview, StatusShortlisted, StatusRejected, StatusHired:
		return true
	}
	return false
}

// JobApplication links one job to one job seeker. The pair (job_id,
// job_seeker_id) is unique: a seeker applies to a given job at most once, and
// concurrent duplicate applies are resolved by the database constraint.
type JobApplication struct {
	ID          uuid.UUID         `json:"id"`
	JobID       uuid.UUID         `json:"job_id"`
	JobSeekerID uuid.UUID         `json:"job_seeker_id"`
	Status      ApplicationStatus `json:"status"`
	CoverNote   string            `json:"cover_note,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// NewJobApplication creates an application in the initial "applied" state.
func NewJobApplication(jobID, seekerID uuid.UUID, coverNote string) *JobApplication {
	now := time.Now().UTC()
	return &JobApplication{
		ID:          uuid.New(),
		JobID:       jobID,
		JobSeekerID: seekerID,
		Status:      StatusApplied,
		CoverNote:   coverNote,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Applicant is the digest view of an application joined with its seeker.
type Applicant struct {
	ApplicationID uuid.UUID `json:"application_id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	CoverNote     string    `json:"cover_note,omitempty"`
	AppliedAt     time.Time `json:"applied_at"`
}
