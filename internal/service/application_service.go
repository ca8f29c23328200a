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
	domainService "github.com/talentforge/jobboard-service/internal/domain/service"
	"github.com/talentforge/jobboard-service/internal/events/kafka"
	"github.com/talentforge/jobboard-service/internal/utils/metrics"
)

// ApplicationService handles job applications and the batched applicant
// digest that goes out to employers.
type ApplicationService struct {
	applications  repository.ApplicationRepository
	jobs          repository.JobRepository
	companies     repository.CompanyRepository
	users         repository.UserRepository
	notifications repository.NotificationRepository
	txManager     repository.TxManager
	producer      kafka.EventProducer
	logger        *zap.Logger
}

func NewApplicationService(
	applications repository.ApplicationRepository,
	jobs repository.JobRepository,
	companies repository.CompanyRepository,
	users repository.UserRepository,
	notifications repository.NotificationRepository,
	txManager repository.TxManager,
	producer kafka.EventProducer,
	logger *zap.Logger,
) *ApplicationService {
	return &ApplicationService{
		applications:  applications,
		jobs:          jobs,
		companies:     companies,
		users:         users,
		notifications: notifications,
		txManager:     txManager,
		producer:      producer,
		logger:        logger,
	}
}

// Apply submits an application for a visible job. The insert and the
// per-job count run in the same transaction, so the count the digest check
// sees already includes the new row. Every fifth application for a job
// triggers a digest event carrying the five newest applicants, oldest
// first. Event publication is best effort and never fails the apply.
func (s *ApplicationService) Apply(ctx context.Context, jobID, seekerID uuid.UUID, req models.ApplyRequest) (*models.JobApplication, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.IsVisible() || job.IsExpired(time.Now().UTC()) {
		return nil, domainErrors.ErrJobNotVisible
	}

	app := models.NewJobApplication(jobID, seekerID, req.CoverNote)

	var (
		totalForJob int64
		digestBatch []models.Applicant
	)
	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.applications.Create(ctx, app); err != nil {
			return err
		}

		count, err := s.applications.CountByJobID(ctx, jobID)
		if err != nil {
			return fmt.Errorf("count applications: %w", err)
		}
		totalForJob = count

		notification := models.NewNotification(job.EmployerID, models.NotificationNewApplication,
			"New application",
			fmt.Sprintf("A new application arrived for %q.", job.Title))
		if err := s.notifications.Create(ctx, notification); err != nil {
			return fmt.Errorf("create notification: %w", err)
		}

		if domainService.DigestDue(totalForJob, domainService.DigestBatchSize) {
			recent, err := s.applications.ListRecentApplicants(ctx, jobID, domainService.DigestBatchSize)
			if err != nil {
				return fmt.Errorf("list recent applicants: %w", err)
			}
			digestBatch = domainService.OrderForDigest(recent)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ApplicationsTotal.Inc()

	s.publishReceived(ctx, app, totalForJob)
	if digestBatch != nil {
		s.publishDigest(ctx, job, totalForJob, digestBatch)
	}

	return app, nil
}

func (s *ApplicationService) publishReceived(ctx context.Context, app *models.JobApplication, totalForJob int64) {
	event := models.ApplicationReceivedEvent{
		ApplicationID: app.ID,
		JobID:         app.JobID,
		JobSeekerID:   app.JobSeekerID,
		TotalForJob:   totalForJob,
	}
	if err := s.producer.PublishEvent(ctx, models.EventApplicationReceived, app.JobID.String(), event); err != nil {
		s.logger.Warn("failed to publish application received event",
			zap.String("application_id", app.ID.String()),
			zap.Error(err))
	}
}

func (s *ApplicationService) publishDigest(ctx context.Context, job *models.Job, totalForJob int64, applicants []models.Applicant) {
	employer, err := s.users.FindByID(ctx, job.EmployerID)
	if err != nil {
		s.logger.Warn("failed to load employer for digest",
			zap.String("job_id", job.ID.String()),
			zap.Error(err))
		return
	}

	companyName := ""
	if company, err := s.companies.FindByID(ctx, job.CompanyID); err == nil {
		companyName = company.Name
	} else {
		s.logger.Warn("failed to load company for digest",
			zap.String("job_id", job.ID.String()),
			zap.Error(err))
	}

	event := models.ApplicationDigestEvent{
		JobID:         job.ID,
		JobTitle:      job.Title,
		CompanyName:   companyName,
		EmployerEmail: employer.Email,
		EmployerName:  employer.FullName,
		TotalForJob:   totalForJob,
		Applicants:    applicants,
	}
	if err := s.producer.PublishEvent(ctx, models.EventApplicationDigest, job.ID.String(), event); err != nil {
		s.logger.Warn("failed to publish digest event",
			zap.String("job_id", job.ID.String()),
			zap.Error(err))
		return
	}

	metrics.DigestsPublishedTotal.Inc()
	s.logger.Info("applicant digest due",
		zap.String("job_id", job.ID.String()),
		zap.Int64("total_for_job", totalForJob),
		zap.Int("batch", len(applicants)))
}

// UpdateStatus moves an application along its status machine. Only the
// employer who owns the posting may transition it; the seeker gets an
// in-app notification about the change.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID, employerID uuid.UUID, next models.ApplicationStatus) (*models.JobApplication, error) {
	app, err := s.applications.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.FindByID(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != employerID {
		return nil, domainErrors.ErrForbidden
	}

	if err := domainService.ValidateTransition(app.Status, next); err != nil {
		return nil, err
	}

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.applications.UpdateStatus(ctx, app.ID, next); err != nil {
			return err
		}
		notification := models.NewNotification(app.JobSeekerID, models.NotificationApplicationStatus,
			"Application update",
			fmt.Sprintf("Your application for %q is now %s.", job.Title, next))
		return s.notifications.Create(ctx, notification)
	})
	if err != nil {
		return nil, err
	}

	app.Status = next
	app.UpdatedAt = time.Now().UTC()
	return app, nil
}

// ListForJob returns a posting's applications to its owning employer.
func (s *ApplicationService) ListForJob(ctx context.Context, jobID, employerID uuid.UUID) ([]*models.JobApplication, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != employerID {
		return nil, domainErrors.ErrForbidden
	}
	return s.applications.ListByJobID(ctx, jobID)
}

// ListMine returns the seeker's own applications.
func (s *ApplicationService) ListMine(ctx context.Context, seekerID uuid.UUID) ([]*models.JobApplication, error) {
	return s.applications.ListBySeeker(ctx, seekerID)
}
