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

// pgxEngagementRepository implements repository.EngagementRepository.
type pgxEngagementRepository struct {
	db *pgxpool.Pool
}

// NewPgxEngagementRepository creates a new engagement repository.
func NewPgxEngagementRepository(db *pgxpool.Pool) repository.EngagementRepository {
	return &pgxEngagementRepository{db: db}
}

const engagementColumns = `id, user_id, job_id, kind, content, created_at`

func (r *pgxEngagementRepository) Create(ctx context.Context, e *models.Engagement) error {
	query := `
		INSERT INTO engagements (` + engagementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := querierFrom(ctx, r.db).Exec(ctx, query,
		e.ID, e.UserID, e.JobID, e.Kind, e.Content, e.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			// Racing toggles for the same (user, job, kind) both miss the
			// existence check; the partial unique index stops the loser here.
			return domainErrors.ErrConflict
		}
		return fmt.Errorf("failed to create engagement: %w", err)
	}
	return nil
}

func (r *pgxEngagementRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Engagement, error) {
	query := `SELECT ` + engagementColumns + ` FROM engagements WHERE id = $1`
	e := &models.Engagement{}
	err := querierFrom(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&e.ID, &e.UserID, &e.JobID, &e.Kind, &e.Content, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrEngagementNotFound
		}
		return nil, fmt.Errorf("failed to find engagement: %w", err)
	}
	return e, nil
}

func (r *pgxEngagementRepository) FindToggle(ctx context.Context, userID, jobID uuid.UUID, kind models.EngagementKind) (*models.Engagement, error) {
	query := `
		SELECT ` + engagementColumns + ` FROM engagements
		WHERE user_id = $1 AND job_id = $2 AND kind = $3`
	e := &models.Engagement{}
	err := querierFrom(ctx, r.db).QueryRow(ctx, query, userID, jobID, kind).Scan(
		&e.ID, &e.UserID, &e.JobID, &e.Kind, &e.Content, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrEngagementNotFound
		}
		return nil, fmt.Errorf("failed to find engagement: %w", err)
	}
	return e, nil
}

func (r *pgxEngagementRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	tag, err := querierFrom(ctx, r.db).Exec(ctx, `DELETE FROM engagements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete engagement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrEngagementNotFound
	}
	return nil
}

func (r *pgxEngagementRepository) ListComments(ctx context.Context, jobID uuid.UUID) ([]*models.Engagement, error) {
	query := `
		SELECT ` + engagementColumns + ` FROM engagements
		WHERE job_id = $1 AND kind = 'comment' ORDER BY created_at ASC`
	rows, err := querierFrom(ctx, r.db).Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []*models.Engagement
	for rows.Next() {
		e := &models.Engagement{}
		if err := rows.Scan(&e.ID, &e.UserID, &e.JobID, &e.Kind, &e.Content, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, e)
	}
	return comments, rows.Err()
}

func (r *pgxEngagementRepository) ListJobIDsByUserKind(ctx context.Context, userID uuid.UUID, kind models.EngagementKind) ([]uuid.UUID, error) {
	query := `
		SELECT job_id FROM engagements
		WHERE user_id = $1 AND kind = $2 ORDER BY created_at DESC`
	rows, err := querierFrom(ctx, r.db).Query(ctx, query, userID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list engagement job ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan job id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *pgxEngagementRepository) DeleteByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (int64, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}
	tag, err := querierFrom(ctx, r.db).Exec(ctx,
		`DELETE FROM engagements WHERE job_id = ANY($1)`, jobIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to delete engagements by jobs: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *pgxEngagementRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := querierFrom(ctx, r.db).Exec(ctx,
		`DELETE FROM engagements WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete engagements by user: %w", err)
	}
	return tag.RowsAffected(), nil
}
