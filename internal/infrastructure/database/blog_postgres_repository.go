package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/talentforge/jobboard-service/internal/domain/errors"
	"github.com/talentforge/jobboard-service/internal/domain/models"
	"github.com/talentforge/jobboard-service/internal/domain/repository"
)

// pgxBlogRepository implements repository.BlogRepository using pgx.
type pgxBlogRepository struct {
	db *pgxpool.Pool
}

// NewPgxBlogRepository creates a new blog repository over the pool.
func NewPgxBlogRepository(db *pgxpool.Pool) repository.BlogRepository {
	return &pgxBlogRepository{db: db}
}

const blogColumns = `id, author_id, title, slug, body, is_published, created_at, updated_at`

func scanBlogPost(row pgx.Row) (*models.BlogPost, error) {
	p := &models.BlogPost{}
	err := row.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Slug, &p.Body, &p.IsPublished, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("failed to scan blog post: %w", err)
	}
	return p, nil
}

func (r *pgxBlogRepository) Create(ctx context.Context, p *models.BlogPost) error {
	query := `
		INSERT INTO blog_posts (` + blogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := querierFrom(ctx, r.db).Exec(ctx, query,
		p.ID, p.AuthorID, p.Title, p.Slug, p.Body, p.IsPublished, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrSlugExists
		}
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

func (r *pgxBlogRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE id = $1`
	return scanBlogPost(querierFrom(ctx, r.db).QueryRow(ctx, query, id))
}

func (r *pgxBlogRepository) FindBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE slug = $1`
	return scanBlogPost(querierFrom(ctx, r.db).QueryRow(ctx, query, slug))
}

func (r *pgxBlogRepository) ListPublished(ctx context.Context, page, perPage int) ([]*models.BlogPost, int64, error) {
	q := querierFrom(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT count(*) FROM blog_posts WHERE is_published = true`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count blog posts: %w", err)
	}

	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE is_published = true ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := q.Query(ctx, query, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.BlogPost
	for rows.Next() {
		p := &models.BlogPost{}
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Slug, &p.Body, &p.IsPublished, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan blog post row: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, total, rows.Err()
}

func (r *pgxBlogRepository) Update(ctx context.Context, p *models.BlogPost) error {
	query := `
		UPDATE blog_posts
		SET title = $2, slug = $3, body = $4, is_published = $5, updated_at = now()
		WHERE id = $1`
	tag, err := querierFrom(ctx, r.db).Exec(ctx, query, p.ID, p.Title, p.Slug, p.Body, p.IsPublished)
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrSlugExists
		}
		return fmt.Errorf("failed to update blog post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrBlogPostNotFound
	}
	return nil
}

func (r *pgxBlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := querierFrom(ctx, r.db).Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrBlogPostNotFound
	}
	return nil
}

func (r *pgxBlogRepository) DeleteByAuthorID(ctx context.Context, authorID uuid.UUID) (int64, error) {
	tag, err := querierFrom(ctx, r.db).Exec(ctx,
		`DELETE FROM blog_posts WHERE author_id = $1`, authorID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete blog posts by author: %w", err)
	}
	return tag.RowsAffected(), nil
}
