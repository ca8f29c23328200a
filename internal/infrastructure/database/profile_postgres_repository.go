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

// pgxProfileRepository implements repository.ProfileRepository using pgx.
type pgxProfileRepository struct {
	db *pgxpool.Pool
}

// NewPgxProfileRepository creates a new profile repository over the pool.
func NewPgxProfileRepository(db *pgxpool.Pool) repository.ProfileRepository {
	return &pgxProfileRepository{db: db}
}

func (r *pgxProfileRepository) Upsert(ctx context.Context, p *models.JobSeekerProfile) error {
	query := `
		INSERT INTO job_seeker_profiles (id, user_id, headline, bio, phone, resume_url, skills, experience_years, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id) DO UPDATE
		SET headline = EXCLUDED.headline, bio = EXCLUDED.bio, phone = EXCLUDED.phone,
		    skills = EXCLUDED.skills, experience_years = EXCLUDED.experience_years, updated_at = now()`
	_, err := querierFrom(ctx, r.db).Exec(ctx, query,
		p.ID, p.UserID, p.Headline, p.Bio, p.Phone, p.ResumeURL,
		p.Skills, p.ExperienceYears, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

func (r *pgxProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.JobSeekerProfile, error) {
	query := `
		SELECT id, user_id, headline, bio, phone, resume_url, skills, experience_years, created_at, updated_at
		FROM job_seeker_profiles WHERE user_id = $1`
	p := &models.JobSeekerProfile{}
	err := querierFrom(ctx, r.db).QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Headline, &p.Bio, &p.Phone, &p.ResumeURL,
		&p.Skills, &p.ExperienceYears, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return p, nil
}

func (r *pgxProfileRepository) SetResumeURL(ctx context.Context, userID uuid.UUID, url string) error {
	query := `UPDATE job_seeker_profiles SET resume_url = $2, updated_at = now() WHERE user_id = $1`
	tag, err := querierFrom(ctx, r.db).Exec(ctx, query, userID, url)
	if err != nil {
		return fmt.Errorf("failed to set resume url: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrProfileNotFound
	}
	return nil
}

func (r *pgxProfileRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_, err := querierFrom(ctx, r.db).Exec(ctx, `DELETE FROM job_seeker_profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

// pgxCareerHistoryRepository implements repository.CareerHistoryRepository.
type pgxCareerHistoryRepository struct {
	db *pgxpool.Pool
}

// NewPgxCareerHistoryRepository creates a new career history repository.
func NewPgxCareerHistoryRepository(db *pgxpool.Pool) repository.CareerHistoryRepository {
	return &pgxCareerHistoryRepository{db: db}
}

func (r *pgxCareerHistoryRepository) Create(ctx context.Context, e *models.CareerHistory) error {
	query := `
		INSERT INTO career_histories (id, profile_id, company_name, title, start_date, end_date, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := querierFrom(ctx, r.db).Exec(ctx, query,
		e.ID, e.ProfileID, e.CompanyName, e.Title, e.StartDate, e.EndDate, e.Description, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create career history entry: %w", err)
	}
	return nil
}

func (r *pgxCareerHistoryRepository) ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]*models.CareerHistory, error) {
	query := `
		SELECT id, profile_id, company_name, title, start_date, end_date, description, created_at
		FROM career_histories WHERE profile_id = $1 ORDER BY start_date DESC`
	rows, err := querierFrom(ctx, r.db).Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list career history: %w", err)
	}
	defer rows.Close()

	var entries []*models.CareerHistory
	for rows.Next() {
		e := &models.CareerHistory{}
		if err := rows.Scan(&e.ID, &e.ProfileID, &e.CompanyName, &e.Title, &e.StartDate, &e.EndDate, &e.Description, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan career history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *pgxCareerHistoryRepository) Delete(ctx context.Context, id, profileID uuid.UUID) error {
	tag, err := querierFrom(ctx, r.db).Exec(ctx,
		`DELETE FROM career_histories WHERE id = $1 AND profile_id = $2`, id, profileID)
	if err != nil {
		return fmt.Errorf("failed to delete career history entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrCareerHistoryNotFound
	}
	return nil
}

func (r *pgxCareerHistoryRepository) DeleteByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error) {
	tag, err := querierFrom(ctx, r.db).Exec(ctx,
		`DELETE FROM career_histories WHERE profile_id = $1`, profileID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete career history by profile: %w", err)
	}
	return tag.RowsAffected(), nil
}
