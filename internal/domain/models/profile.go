package models

import (
	"time"

	"github.com/google/uuid"
)

// JobSeekerProfile is the one-to-one extension of a job-seeker user.
// Skills are decoded into a typed slice once at the storage boundary; the
// rest of the code never re-parses loosely shaped values.
type JobSeekerProfile struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Headline        string    `json:"headline"`
	Bio             string    `json:"bio"`
	Phone           string    `json:"phone,omitempty"`
	ResumeURL       string    `json:"resume_url,omitempty"`
	Skills          []string  `json:"skills"`
	ExperienceYears int       `json:"experience_years"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewJobSeekerProfile creates an empty profile for the given user.
func NewJobSeekerProfile(userID uuid.UUID) *JobSeekerProfile {
	now := time.Now().UTC()
	return &JobSeekerProfile{
		ID:        uuid.New(),
		UserID:    userID,
		Skills:    []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CareerHistory is a single employment entry owned by a job-seeker profile.
type CareerHistory struct {
	ID          uuid.UUID  `json:"id"`
	ProfileID   uuid.UUID  `json:"profile_id"`
	CompanyName string     `json:"company_name"`
	Title       string     `json:"title"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
