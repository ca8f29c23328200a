package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/talentforge/jobboard-service/internal/domain/models"
)

// ProfileRepository persists job-seeker profiles.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *models.JobSeekerProfile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.JobSeekerProfile, error)
	SetResumeURL(ctx context.Context, userID uuid.UUID, url string) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// CareerHistoryRepository persists employment entries owned by a profile.
type CareerHistoryRepository interface {
	Create(ctx context.Context, entry *models.CareerHistory) error
	ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]*models.CareerHistory, error)
	Delete(ctx context.Context, id, profileID uuid.UUID) error
	DeleteByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error)
}
