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

// pgxApplicationRepository implements repository.ApplicationRepository.
type pgxApplicationRepository struct {
	db *pgxpool.Pool
}

// NewPgxApplicationRepository creates a new application repository.
func NewPgxApplicationRepository(db *pgxpool.Pool) repository.ApplicationRepository {
	return &pgxApplicationRepository{db: db}
}

const applicationColumns = `id, job_id, job_seeker_id, status, cover_note, created_at, updated_at`

func scanApplication(row pgx.Row) (*models.JobApplication, error) {
	a := &models.JobApplication{}
	err := row.Scan(&a.ID, &a.JobID, &a.JobSeekerID, &a.Status, &a.CoverNote, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to scan application: %w", err)
	}
	return a, nil
}

func scanApplicationRows(rows pgx.Rows) ([]*models.JobApplication, error) {
	defer rows.Close()
	var apps []*models.JobApplication
	for rows.Next() {
		a := &models.JobApplication{}
		if err := rows.Scan(&a.ID, &a.JobID, &a.JobSeekerID, &a.Status, &a.CoverNote, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *pgxApplicationRepository) Create(ctx context.Context, a *models.JobApplication) error {
	query := `
		INSERT INTO job_applications (` + applicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := querierFrom(ctx, r.db).Exec(ctx, query,
		a.ID, a.JobID, a.JobSeekerID, a.Status, a.CoverNote, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			// The (job_id, job_seeker_id) unique index resolves racing
			// duplicate applies; the loser surfaces here.
			return domainErrors.ErrDuplicateApplication
		}
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

func (r *pgxApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.JobApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE id = $1`
	return scanApplication(querierFrom(ctx, r.db).QueryRow(ctx, query, id))
}

func (r *pgxApplicationRepository) CountByJobID(ctx context.Context, jobID uuid.UUID) (int64, error) {
	var count int64
	err := querierFrom(ctx, r.db).QueryRow(ctx,
		`SELECT count(*) FROM job_applications WHERE job_id = $1`, jobID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return count, nil
}

func (r *pgxApplicationRepository) ListRecentApplicants(ctx context.Context, jobID uuid.UUID, limit int) ([]models.Applicant, error) {
	query := `
		SELECT a.id, u.full_name, u.email, COALESCE(p.phone, ''), a.cover_note, a.created_at
		FROM job_applications a
		JOIN users u ON u.id = a.job_seeker_id
		LEFT JOIN job_seeker_profiles p ON p.user_id = a.job_seeker_id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC
		LIMIT $2`
	rows, err := querierFrom(ctx, r.db).Query(ctx, query, jobID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent applicants: %w", err)
	}
	defer rows.Close()

	var applicants []models.Applicant
	for rows.Next() {
		var a models.Applicant
		if err := rows.Scan(&a.ApplicationID, &a.FullName, &a.Email, &a.Phone, &a.CoverNote, &a.AppliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan applicant row: %w", err)
		}
		applicants = append(applicants, a)
	}
	return applicants, rows.Err()
}

func (r *pgxApplicationRepository) ListByJobID(ctx context.Context, jobID uuid.UUID) ([]*models.JobApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE job_id = $1 ORDER BY created_at DESC`
	rows, err := querierFrom(ctx, r.db).Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications by job: %w", err)
	}
	return scanApplicationRows(rows)
}

func (r *pgxApplicationRepository) ListBySeeker(ctx context.Context, seekerID uuid.UUID) ([]*models.JobApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE job_seeker_id = $1 ORDER BY created_at DESC`
	rows, err := querierFrom(ctx, r.db).Query(ctx, query, seekerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications by seeker: %w", err)
	}
	return scanApplicationRows(rows)
}

func (r *pgxApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) error {
	tag, err := querierFrom(ctx, r.db).Exec(ctx,
		`UPDATE job_applications SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrApplicationNotFound
	}
	return nil
}

func (r *pgxApplicationRepository) DeleteByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (int64, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}
	tag, err := querierFrom(ctx, r.db).Exec(ctx,
		`DELETE FROM job_applications WHERE job_id = ANY($1)`, jobIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to delete applications: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *pgxApplicationRepository) DeleteBySeekerID(ctx context.Context, seekerID uuid.UUID) (int64, error) {
	tag, err := querierFrom(ctx, r.db).Exec(ctx,
		`DELETE FROM job_applications WHERE job_seeker_id = $1`, seekerID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete applications by seeker: %w", err)
	}
	return tag.RowsAffected(), nil
}
