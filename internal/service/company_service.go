package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainErrors "github.com/talentforge/jobboard-service/internal/domain/errors"
	"github.com/talentforge/jobboard-service/internal/domain/models"
	"github.com/talentforge/jobboard-service/internal/domain/repository"
)

// FileUploader stores a binary blob and returns its public URL.
type FileUploader interface {
	Upload(ctx context.Context, prefix, ext string, data []byte, contentType string) (string, error)
}

// CompanyService owns company CRUD and moderation.
type CompanyService struct {
	companies     repository.CompanyRepository
	notifications repository.NotificationRepository
	uploader      FileUploader
	logger        *zap.Logger
}

func NewCompanyService(companies repository.CompanyRepository, notifications repository.NotificationRepository, uploader FileUploader, logger *zap.Logger) *CompanyService {
	return &CompanyService{
		companies:     companies,
		notifications: notifications,
		uploader:      uploader,
		logger:        logger,
	}
}

// Create registers a company for the employer. New companies start
// unapproved and cannot receive postings until an admin approves them.
func (s *CompanyService) Create(ctx context.Context, employerID uuid.UUID, req models.CompanyRequest) (*models.Company, error) {
	company := models.NewCompany(employerID, req.Name, req.Description)
	company.Website = req.Website
	if req.Industries != nil {
		company.Industries = req.Industries
	}

	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Get loads one company.
func (s *CompanyService) Get(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	return s.companies.FindByID(ctx, id)
}

// ListMine returns the employer's companies.
func (s *CompanyService) ListMine(ctx context.Context, employerID uuid.UUID) ([]*models.Company, error) {
	return s.companies.ListByEmployer(ctx, employerID)
}

// Update edits a company owned by the employer.
func (s *CompanyService) Update(ctx context.Context, companyID, employerID uuid.UUID, req models.CompanyRequest) (*models.Company, error) {
	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company.EmployerID != employerID {
		return nil, domainErrors.ErrForbidden
	}

	company.Name = req.Name
	company.Description = req.Description
	company.Website = req.Website
	if req.Industries != nil {
		company.Industries = req.Industries
	}
	company.UpdatedAt = time.Now().UTC()

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// UploadLogo stores the logo image and records its URL on the company.
func (s *CompanyService) UploadLogo(ctx context.Context, companyID, employerID uuid.UUID, data []byte, ext, contentType string) (*models.Company, error) {
	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company.EmployerID != employerID {
		return nil, domainErrors.ErrForbidden
	}

	url, err := s.uploader.Upload(ctx, "company-logos", ext, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("upload logo: %w", err)
	}

	company.LogoURL = url
	company.UpdatedAt = time.Now().UTC()
	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// SetApproved is the admin moderation switch; approval notifies the owner.
func (s *CompanyService) SetApproved(ctx context.Context, companyID uuid.UUID, approved bool) (*models.Company, error) {
	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if err := s.companies.SetApproved(ctx, companyID, approved); err != nil {
		return nil, err
	}
	company.IsApproved = approved

	if approved {
		notification := models.NewNotification(company.EmployerID, models.NotificationCompanyApproved,
			"Company approved",
			fmt.Sprintf("Your company %q has been approved. You can now post jobs.", company.Name))
		if err := s.notifications.Create(ctx, notification); err != nil {
			s.logger.Warn("failed to create company approval notification",
				zap.String("company_id", companyID.String()),
				zap.Error(err))
		}
	}
	return company, nil
}
