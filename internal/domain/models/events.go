package models

import (
	"time"

	"github.com/google/uuid"
)

// Event types published to Kafka as CloudEvents.
const (
	EventUserDeleted         = "jobboard.user.deleted"
	EventApplicationReceived = "jobboard.application.received"
	EventApplicationDigest   = "jobboard.application.digest.due"
)

// UserDeletedEvent is emitted after a cascade deletion commits.
type UserDeletedEvent struct {
	UserID           uuid.UUID `json:"user_id"`
	Role             UserRole  `json:"role"`
	DeletedCompanies int       `json:"deleted_companies"`
	DeletedJobs      int       `json:"deleted_jobs"`
	DeletedAt        time.Time `json:"deleted_at"`
}

// ApplicationReceivedEvent is emitted for every persisted application.
type ApplicationReceivedEvent struct {
	ApplicationID uuid.UUID `json:"application_id"`
	JobID         uuid.UUID `json:"job_id"`
	JobSeekerID   uuid.UUID `json:"job_seeker_id"`
	TotalForJob   int64     `json:"total_for_job"`
}

// ApplicationDigestEvent asks the mail worker to deliver a batched applicant
// digest to the employer. Applicants are ordered oldest-first.
type ApplicationDigestEvent struct {
	JobID         uuid.UUID   `json:"job_id"`
	JobTitle      string      `json:"job_title"`
	CompanyName   string      `json:"company_name"`
	EmployerEmail string      `json:"employer_email"`
	EmployerName  string      `json:"employer_name"`
	TotalForJob   int64       `json:"total_for_job"`
	Applicants    []Applicant `json:"applicants"`
}
