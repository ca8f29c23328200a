package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainErrors "github.com/talentforge/jobboard-service/internal/domain/errors"
	"github.com/talentforge/jobboard-service/internal/domain/models"
	"github.com/talentforge/jobboard-service/internal/domain/repository"
)

// BlogService owns blog posts. Authoring is restricted to admins; the
// public surface sees only published posts.
type BlogService struct {
	posts  repository.BlogRepository
	logger *zap.Logger
}

func NewBlogService(posts repository.BlogRepository, logger *zap.Logger) *BlogService {
	return &BlogService{
		posts:  posts,
		logger: logger,
	}
}

// Create writes a new post under the author's id.
func (s *BlogService) Create(ctx context.Context, authorID uuid.UUID, req models.BlogPostRequest) (*models.BlogPost, error) {
	post := models.NewBlogPost(authorID, req.Title, req.Slug, req.Body)
	post.IsPublished = req.IsPublished
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetBySlug returns a published post by its slug. Unpublished posts are
// hidden behind not-found.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	post, err := s.posts.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.IsPublished {
		return nil, domainErrors.ErrBlogPostNotFound
	}
	return post, nil
}

// ListPublished returns a page of published posts, newest first.
func (s *BlogService) ListPublished(ctx context.Context, page, perPage int) (*models.Page[*models.BlogPost], error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	posts, total, err := s.posts.ListPublished(ctx, page, perPage)
	if err != nil {
		return nil, err
	}
	return &models.Page[*models.BlogPost]{Items: posts, Total: total, Page: page, PerPage: perPage}, nil
}

// Update edits a post.
func (s *BlogService) Update(ctx context.Context, id uuid.UUID, req models.BlogPostRequest) (*models.BlogPost, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Slug = req.Slug
	post.Body = req.Body
	post.IsPublished = req.IsPublished
	post.UpdatedAt = time.Now().UTC()

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post.
func (s *BlogService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.posts.Delete(ctx, id)
}
