package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/talentforge/jobboard-service/internal/domain/models"
)

// BlogRepository persists blog posts.
type BlogRepository interface {
	Create(ctx context.Context, post *models.BlogPost) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	ListPublished(ctx context.Context, page, perPage int) ([]*models.BlogPost, int64, error)
	Update(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByAuthorID(ctx context.Context, authorID uuid.UUID) (int64, error)
}
