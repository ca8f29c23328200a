package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/talentforge/jobboard-service/internal/domain/models"
)

// CompanyRepository persists employer companies.
type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]*models.Company, error)
	ListIDsByEmployer(ctx context.Context, employerID uuid.UUID) ([]uuid.UUID, error)
	Update(ctx context.Context, company *models.Company) error
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}
