package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/talentforge/jobboard-service/internal/domain/models"
)

// ApplicationRepository persists job applications.
type ApplicationRepository interface {
	// Create inserts an application. A violation of the (job_id,
	// job_seeker_id) uniqueness constraint surfaces as
	// errors.ErrDuplicateApplication.
	Create(ctx context.Context, app *models.JobApplication) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.JobApplication, error)
	CountByJobID(ctx context.Context, jobID uuid.UUID) (int64, error)
	// ListRecentApplicants returns the newest limit applications for the job
	// joined with seeker identity, ordered newest-first.
	ListRecentApplicants(ctx context.Context, jobID uuid.UUID, limit int) ([]models.Applicant, error)
	ListByJobID(ctx context.Context, jobID uuid.UUID) ([]*models.JobApplication, error)
	ListBySeeker(ctx context.Context, seekerID uuid.UUID) ([]*models.JobApplication, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) error
	DeleteByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (int64, error)
	DeleteBySeekerID(ctx context.Context, seekerID uuid.UUID) (int64, error)
}
