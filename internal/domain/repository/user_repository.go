package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/talentforge/jobboard-service/internal/domain/models"
)

// UserRepository persists platform accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, page, perPage int) ([]*models.User, int64, error)
	Update(ctx context.Context, user *models.User) error
	// DeleteByID removes the user row itself. Callers outside the cascade
	// deletion transaction must never use it directly.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
