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

// pgxCompanyRepository implements repository.CompanyRepository using pgx.
type pgxCompanyRepository struct {
	db *pgxpool.Pool
}

// NewPgxCompanyRepository creates a new company repository over the pool.
func NewPgxCompanyRepository(db *pgxpool.Pool) repository.CompanyRepository {
	return &pgxCompanyRepository{db: db}
}

const companyColumns = `id, employer_id, name, description, website, logo_url, industries, is_approved, created_at, updated_at`

func scanCompany(row pgx.Row) (*models.Company, error) {
	c := &models.Company{}
	err := row.Scan(
		&c.ID, &c.EmployerID, &c.Name, &c.Description, &c.Website,
		&c.LogoURL, &c.Industries, &c.IsApproved, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to scan company: %w", err)
	}
	return c, nil
}

func (r *pgxCompanyRepository) Create(ctx context.Context, c *models.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := querierFrom(ctx, r.db).Exec(ctx, query,
		c.ID, c.EmployerID, c.Name, c.Description, c.Website,
		c.LogoURL, c.Industries, c.IsApproved, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

func (r *pgxCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return scanCompany(querierFrom(ctx, r.db).QueryRow(ctx, query, id))
}

func (r *pgxCompanyRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]*models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE employer_id = $1 ORDER BY created_at DESC`
	rows, err := querierFrom(ctx, r.db).Query(ctx, query, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []*models.Company
	for rows.Next() {
		c := &models.Company{}
		if err := rows.Scan(
			&c.ID, &c.EmployerID, &c.Name, &c.Description, &c.Website,
			&c.LogoURL, &c.Industries, &c.IsApproved, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan company row: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *pgxCompanyRepository) ListIDsByEmployer(ctx context.Context, employerID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := querierFrom(ctx, r.db).Query(ctx,
		`SELECT id FROM companies WHERE employer_id = $1`, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list company ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan company id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *pgxCompanyRepository) Update(ctx context.Context, c *models.Company) error {
	query := `
		UPDATE companies
		SET name = $2, description = $3, website = $4, logo_url = $5, industries = $6, updated_at = now()
		WHERE id = $1`
	tag, err := querierFrom(ctx, r.db).Exec(ctx, query,
		c.ID, c.Name, c.Description, c.Website, c.LogoURL, c.Industries,
	)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrCompanyNotFound
	}
	return nil
}

func (r *pgxCompanyRepository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	tag, err := querierFrom(ctx, r.db).Exec(ctx,
		`UPDATE companies SET is_approved = $2, updated_at = now() WHERE id = $1`, id, approved)
	if err != nil {
		return fmt.Errorf("failed to set company approval: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrCompanyNotFound
	}
	return nil
}

func (r *pgxCompanyRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := querierFrom(ctx, r.db).Exec(ctx,
		`DELETE FROM companies WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete companies: %w", err)
	}
	return tag.RowsAffected(), nil
}
