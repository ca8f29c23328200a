package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/talentforge/jobboard-service/internal/domain/models"
)

// EngagementRepository persists likes, comments, favorites, interests and
// bookmarks.
type EngagementRepository interface {
	Create(ctx context.Context, engagement *models.Engagement) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Engagement, error)
	// FindToggle locates an existing toggle-kind row for (user, job, kind).
	FindToggle(ctx context.Context, userID, jobID uuid.UUID, kind models.EngagementKind) (*models.Engagement, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	ListComments(ctx context.Context, jobID uuid.UUID) ([]*models.Engagement, error)
	// ListJobIDsByUserKind returns job ids the user engaged with, e.g. the
	// saved-jobs listing for the bookmark kind.
	ListJobIDsByUserKind(ctx context.Context, userID uuid.UUID, kind models.EngagementKind) ([]uuid.UUID, error)
	DeleteByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (int64, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}
