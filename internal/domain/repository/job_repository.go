package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/talentforge/jobboard-service/internal/domain/models"
)

// JobRepository persists job postings.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	// ListPublic returns approved, active postings matching the filter.
	ListPublic(ctx context.Context, filter models.JobFilter) ([]*models.Job, int64, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]*models.Job, error)
	// ListIDsByEmployer collects postings owned directly via employer_id or
	// through any of the employer's companies.
	ListIDsByEmployer(ctx context.Context, employerID uuid.UUID) ([]uuid.UUID, error)
	Update(ctx context.Context, job *models.Job) error
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
	// DeactivateExpired flips is_active off for postings past their expiry
	// and returns the number of postings affected.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}
