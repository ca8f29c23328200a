package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/talentforge/jobboard-service/internal/domain/errors"
	"github.com/talentforge/jobboard-service/internal/domain/models"
	"github.com/talentforge/jobboard-service/internal/domain/repository"
)

// pgxJobRepository implements repository.JobRepository using pgx.
type pgxJobRepository struct {
	db *pgxpool.Pool
}

// NewPgxJobRepository creates a new job repository over the pool.
func NewPgxJobRepository(db *pgxpool.Pool) repository.JobRepository {
	return &pgxJobRepository{db: db}
}

const jobColumns = `id, company_id, employer_id, title, description, location, job_type,
	salary_min, salary_max, skills, is_approved, is_active, expires_at, created_at, updated_at`

func scanJob(row pgx.Row) (*models.Job, error) {
	j := &models.Job{}
	err := row.Scan(
		&j.ID, &j.CompanyID, &j.EmployerID, &j.Title, &j.Description, &j.Location, &j.JobType,
		&j.SalaryMin, &j.SalaryMax, &j.Skills, &j.IsApproved, &j.IsActive, &j.ExpiresAt,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to scan job: %w", err)
	}
	return j, nil
}

func scanJobRows(rows pgx.Rows) ([]*models.Job, error) {
	defer rows.Close()
	var jobs []*models.Job
	for rows.Next() {
		j := &models.Job{}
		if err := rows.Scan(
			&j.ID, &j.CompanyID, &j.EmployerID, &j.Title, &j.Description, &j.Location, &j.JobType,
			&j.SalaryMin, &j.SalaryMax, &j.Skills, &j.IsApproved, &j.IsActive, &j.ExpiresAt,
			&j.CreatedAt, &j.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (r *pgxJobRepository) Create(ctx context.Context, j *models.Job) error {
	query := `
		INSERT INTO jobs (` + jobColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := querierFrom(ctx, r.db).Exec(ctx, query,
		j.ID, j.CompanyID, j.EmployerID, j.Title, j.Description, j.Location, j.JobType,
		j.SalaryMin, j.SalaryMax, j.Skills, j.IsApproved, j.IsActive, j.ExpiresAt,
		j.CreatedAt, j.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

func (r *pgxJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	return scanJob(querierFrom(ctx, r.db).QueryRow(ctx, query, id))
}

func (r *pgxJobRepository) ListPublic(ctx context.Context, filter models.JobFilter) ([]*models.Job, int64, error) {
	q := querierFrom(ctx, r.db)

	where := []string{"is_approved = true", "is_active = true"}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Query != "" {
		p := arg("%" + filter.Query + "%")
		where = append(where, fmt.Sprintf("(title ILIKE %s OR description ILIKE %s)", p, p))
	}
	if filter.Location != "" {
		where = append(where, "location ILIKE "+arg("%"+filter.Location+"%"))
	}
	if filter.JobType != "" {
		where = append(where, "job_type = "+arg(filter.JobType))
	}
	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT count(*) FROM jobs WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 || filter.PerPage > 100 {
		filter.PerPage = 20
	}
	listQuery := fmt.Sprintf(
		`SELECT %s FROM jobs WHERE %s ORDER BY created_at DESC LIMIT %s OFFSET %s`,
		jobColumns, whereClause, arg(filter.PerPage), arg((filter.Page-1)*filter.PerPage),
	)
	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}
	jobs, err := scanJobRows(rows)
	return jobs, total, err
}

func (r *pgxJobRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE employer_id = $1 ORDER BY created_at DESC`
	rows, err := querierFrom(ctx, r.db).Query(ctx, query, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employer jobs: %w", err)
	}
	return scanJobRows(rows)
}

func (r *pgxJobRepository) ListIDsByEmployer(ctx context.Context, employerID uuid.UUID) ([]uuid.UUID, error) {
	// Owned directly or through any of the employer's companies. The
	// employer_id column is denormalized, so both paths are checked.
	query := `
		SELECT id FROM jobs
		WHERE employer_id = $1
		   OR company_id IN (SELECT id FROM companies WHERE employer_id = $1)`
	rows, err := querierFrom(ctx, r.db).Query(ctx, query, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list job ids: %w", err)
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

func (r *pgxJobRepository) Update(ctx context.Context, j *models.Job) error {
	query := `
		UPDATE jobs
		SET title = $2, description = $3, location = $4, job_type = $5, salary_min = $6,
		    salary_max = $7, skills = $8, is_active = $9, expires_at = $10, updated_at = now()
		WHERE id = $1`
	tag, err := querierFrom(ctx, r.db).Exec(ctx, query,
		j.ID, j.Title, j.Description, j.Location, j.JobType, j.SalaryMin,
		j.SalaryMax, j.Skills, j.IsActive, j.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrJobNotFound
	}
	return nil
}

func (r *pgxJobRepository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	tag, err := querierFrom(ctx, r.db).Exec(ctx,
		`UPDATE jobs SET is_approved = $2, updated_at = now() WHERE id = $1`, id, approved)
	if err != nil {
		return fmt.Errorf("failed to set job approval: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrJobNotFound
	}
	return nil
}

func (r *pgxJobRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := querierFrom(ctx, r.db).Exec(ctx, `DELETE FROM jobs WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete jobs: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *pgxJobRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := querierFrom(ctx, r.db).Exec(ctx,
		`UPDATE jobs SET is_active = false, updated_at = now() WHERE is_active = true AND expires_at IS NOT NULL AND expires_at < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate expired jobs: %w", err)
	}
	return tag.RowsAffected(), nil
}
