package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainErrors "github.com/talentforge/jobboard-service/internal/domain/errors"
	"github.com/talentforge/jobboard-service/internal/domain/models"
	"github.com/talentforge/jobboard-service/internal/domain/repository"
	"github.com/talentforge/jobboard-service/internal/infrastructure/cache"
)

// ListingCache caches public job listings per filter.
type ListingCache interface {
	Get(ctx context.Context, filter models.JobFilter) (*models.Page[*models.Job], error)
	Set(ctx context.Context, filter models.JobFilter, page *models.Page[*models.Job]) error
	Invalidate(ctx context.Context)
}

// JobService owns posting CRUD, moderation and the public listing.
type JobService struct {
	jobs          repository.JobRepository
	companies     repository.CompanyRepository
	applications  repository.ApplicationRepository
	engagements   repository.EngagementRepository
	notifications repository.NotificationRepository
	txManager     repository.TxManager
	listings      ListingCache
	logger        *zap.Logger
}

func NewJobService(
	jobs repository.JobRepository,
	companies repository.CompanyRepository,
	applications repository.ApplicationRepository,
	engagements repository.EngagementRepository,
	notifications repository.NotificationRepository,
	txManager repository.TxManager,
	listings ListingCache,
	logger *zap.Logger,
) *JobService {
	return &JobService{
		jobs:          jobs,
		companies:     companies,
		applications:  applications,
		engagements:   engagements,
		notifications: notifications,
		txManager:     txManager,
		listings:      listings,
		logger:        logger,
	}
}

// Create posts a new job under one of the employer's approved companies.
// New postings start unapproved and invisible to the public listing.
func (s *JobService) Create(ctx context.Context, employerID uuid.UUID, req models.JobRequest) (*models.Job, error) {
	company, err := s.companies.FindByID(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}
	if company.EmployerID != employerID {
		return nil, domainErrors.ErrForbidden
	}
	if !company.IsApproved {
		return nil, domainErrors.ErrCompanyNotApproved
	}

	job := models.NewJob(company.ID, employerID, req.Title)
	applyJobRequest(job, req)

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Update edits a posting owned by the employer. Edits do not reset
// approval; moderation applies to the posting, not each revision.
func (s *JobService) Update(ctx context.Context, jobID, employerID uuid.UUID, req models.JobRequest) (*models.Job, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != employerID {
		return nil, domainErrors.ErrForbidden
	}

	applyJobRequest(job, req)
	job.UpdatedAt = time.Now().UTC()

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	s.listings.Invalidate(ctx)
	return job, nil
}

func applyJobRequest(job *models.Job, req models.JobRequest) {
	job.Title = req.Title
	job.Description = req.Description
	job.Location = req.Location
	job.JobType = req.JobType
	job.SalaryMin = req.SalaryMin
	job.SalaryMax = req.SalaryMax
	if req.Skills != nil {
		job.Skills = req.Skills
	}
	job.ExpiresAt = req.ExpiresAt
}

// Get returns a posting. Invisible postings are only shown to their owner
// or an admin; everyone else gets not-found so hidden postings do not leak.
func (s *JobService) Get(ctx context.Context, jobID uuid.UUID, viewer *models.User) (*models.Job, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.IsVisible() {
		return job, nil
	}
	if viewer != nil && (viewer.ID == job.EmployerID || viewer.IsSuperAdmin()) {
		return job, nil
	}
	return nil, domainErrors.ErrJobNotFound
}

// ListPublic returns approved, active postings matching the filter, served
// from cache when possible.
func (s *JobService) ListPublic(ctx context.Context, filter models.JobFilter) (*models.Page[*models.Job], error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 || filter.PerPage > 100 {
		filter.PerPage = 20
	}

	if page, err := s.listings.Get(ctx, filter); err == nil {
		return page, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("job listing cache read failed", zap.Error(err))
	}

	jobs, total, err := s.jobs.ListPublic(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := &models.Page[*models.Job]{Items: jobs, Total: total, Page: filter.Page, PerPage: filter.PerPage}
	if err := s.listings.Set(ctx, filter, page); err != nil {
		s.logger.Warn("job listing cache write failed", zap.Error(err))
	}
	return page, nil
}

// ListByEmployer returns all postings the employer owns, visible or not.
func (s *JobService) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]*models.Job, error) {
	return s.jobs.ListByEmployer(ctx, employerID)
}

// SetApproved is the admin moderation switch. Approval notifies the
// employer; either direction invalidates the public listing cache.
func (s *JobService) SetApproved(ctx context.Context, jobID uuid.UUID, approved bool) (*models.Job, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if err := s.jobs.SetApproved(ctx, jobID, approved); err != nil {
		return nil, err
	}
	job.IsApproved = approved
	s.listings.Invalidate(ctx)

	if approved {
		notification := models.NewNotification(job.EmployerID, models.NotificationJobApproved,
			"Job approved",
			fmt.Sprintf("Your posting %q has been approved and is now live.", job.Title))
		if err := s.notifications.Create(ctx, notification); err != nil {
			s.logger.Warn("failed to create job approval notification",
				zap.String("job_id", jobID.String()),
				zap.Error(err))
		}
	}
	return job, nil
}

// Delete removes a posting and its dependents (applications and
// engagements first) in one transaction.
func (s *JobService) Delete(ctx context.Context, jobID, employerID uuid.UUID, isAdmin bool) error {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return err
	}
	if !isAdmin && job.EmployerID != employerID {
		return domainErrors.ErrForbidden
	}

	jobIDs := []uuid.UUID{job.ID}
	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.applications.DeleteByJobIDs(ctx, jobIDs); err != nil {
			return err
		}
		if _, err := s.engagements.DeleteByJobIDs(ctx, jobIDs); err != nil {
			return err
		}
		_, err := s.jobs.DeleteByIDs(ctx, jobIDs)
		return err
	})
	if err != nil {
		return err
	}

	s.listings.Invalidate(ctx)
	s.logger.Info("job deleted", zap.String("job_id", jobID.String()))
	return nil
}

// DeactivateExpired flips postings past their expiry off the public
// listing. Called by the scheduler.
func (s *JobService) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	affected, err := s.jobs.DeactivateExpired(ctx, now)
	if err != nil {
		return 0, err
	}
	if affected > 0 {
		s.listings.Invalidate(ctx)
		s.logger.Info("expired jobs deactivated", zap.Int64("count", affected))
	}
	return affected, nil
}
