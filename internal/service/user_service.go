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
	domainService "github.com/talentforge/jobboard-service/internal/domain/service"
	"github.com/talentforge/jobboard-service/internal/events/kafka"
	"github.com/talentforge/jobboard-service/internal/utils/metrics"
)

// UserService owns account reads and the cascade deletion flow.
type UserService struct {
	users         repository.UserRepository
	profiles      repository.ProfileRepository
	careerHistory repository.CareerHistoryRepository
	companies     repository.CompanyRepository
	jobs          repository.JobRepository
	applications  repository.ApplicationRepository
	engagements   repository.EngagementRepository
	notifications repository.NotificationRepository
	blogPosts     repository.BlogRepository
	txManager     repository.TxManager
	producer      kafka.EventProducer
	logger        *zap.Logger
}

func NewUserService(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	careerHistory repository.CareerHistoryRepository,
	companies repository.CompanyRepository,
	jobs repository.JobRepository,
	applications repository.ApplicationRepository,
	engagements repository.EngagementRepository,
	notifications repository.NotificationRepository,
	blogPosts repository.BlogRepository,
	txManager repository.TxManager,
	producer kafka.EventProducer,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		users:         users,
		profiles:      profiles,
		careerHistory: careerHistory,
		companies:     companies,
		jobs:          jobs,
		applications:  applications,
		engagements:   engagements,
		notifications: notifications,
		blogPosts:     blogPosts,
		txManager:     txManager,
		producer:      producer,
		logger:        logger,
	}
}

// GetByID loads one account.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

// List returns a page of accounts, newest first.
func (s *UserService) List(ctx context.Context, page, perPage int) (*models.Page[*models.User], error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	users, total, err := s.users.List(ctx, page, perPage)
	if err != nil {
		return nil, err
	}
	return &models.Page[*models.User]{Items: users, Total: total, Page: page, PerPage: perPage}, nil
}

// SetActive flips the account's active flag.
func (s *UserService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.IsActive = active
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUserCascade removes an account and everything it owns in one
// transaction. The dependent-entity ids are snapshotted up front, turned
// into an ordered plan, and every step of the plan is executed inside a
// single transaction so a failing step leaves no partial deletion behind.
// A user-deleted event is published after the commit, best effort.
func (s *UserService) DeleteUserCascade(ctx context.Context, userID uuid.UUID) (*models.DeletionSummary, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	snap, err := s.snapshotOwnership(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("snapshot ownership: %w", err)
	}

	plan, err := domainService.BuildCascadePlan(user.ID, user.Role, snap)
	if err != nil {
		return nil, err
	}

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, step := range plan {
			if err := s.executeStep(ctx, step); err != nil {
				return fmt.Errorf("cascade step %s: %w", step.Target, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary := &models.DeletionSummary{
		DeletedUser:      user,
		DeletedCompanies: len(snap.CompanyIDs),
		DeletedJobs:      len(snap.JobIDs),
	}

	metrics.UsersDeletedTotal.WithLabelValues(string(user.Role)).Inc()
	s.logger.Info("user deleted",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
		zap.Int("deleted_companies", summary.DeletedCompanies),
		zap.Int("deleted_jobs", summary.DeletedJobs))

	event := models.UserDeletedEvent{
		UserID:           user.ID,
		Role:             user.Role,
		DeletedCompanies: summary.DeletedCompanies,
		DeletedJobs:      summary.DeletedJobs,
		DeletedAt:        time.Now().UTC(),
	}
	if err := s.producer.PublishEvent(ctx, models.EventUserDeleted, user.ID.String(), event); err != nil {
		s.logger.Warn("failed to publish user deleted event",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
	}

	return summary, nil
}

// snapshotOwnership collects the ids of everything the user owns. Reads run
// outside the deletion transaction; the plan tolerates rows that vanish in
// between because bulk deletes on already-empty sets are no-ops.
func (s *UserService) snapshotOwnership(ctx context.Context, user *models.User) (domainService.CascadeSnapshot, error) {
	var snap domainService.CascadeSnapshot

	switch user.Role {
	case models.RoleJobSeeker:
		profile, err := s.profiles.FindByUserID(ctx, user.ID)
		if err != nil {
			if !errors.Is(err, domainErrors.ErrProfileNotFound) {
				return snap, err
			}
		} else {
			snap.ProfileID = &profile.ID
		}
	case models.RoleEmployer:
		companyIDs, err := s.companies.ListIDsByEmployer(ctx, user.ID)
		if err != nil {
			return snap, err
		}
		jobIDs, err := s.jobs.ListIDsByEmployer(ctx, user.ID)
		if err != nil {
			return snap, err
		}
		snap.CompanyIDs = companyIDs
		snap.JobIDs = jobIDs
	}

	return snap, nil
}

func (s *UserService) executeStep(ctx context.Context, step domainService.CascadeStep) error {
	switch step.Target {
	case domainService.StepCareerHistory:
		_, err := s.careerHistory.DeleteByProfileID(ctx, step.ProfileID)
		return err
	case domainService.StepProfile:
		return s.profiles.DeleteByID(ctx, step.ProfileID)
	case domainService.StepApplicationsByJobs:
		_, err := s.applications.DeleteByJobIDs(ctx, step.JobIDs)
		return err
	case domainService.StepEngagementsByJobs:
		_, err := s.engagements.DeleteByJobIDs(ctx, step.JobIDs)
		return err
	case domainService.StepJobs:
		_, err := s.jobs.DeleteByIDs(ctx, step.JobIDs)
		return err
	case domainService.StepCompanies:
		_, err := s.companies.DeleteByIDs(ctx, step.CompanyIDs)
		return err
	case domainService.StepApplicationsByUser:
		_, err := s.applications.DeleteBySeekerID(ctx, step.UserID)
		return err
	case domainService.StepEngagementsByUser:
		_, err := s.engagements.DeleteByUserID(ctx, step.UserID)
		return err
	case domainService.StepNotificationsUser:
		_, err := s.notifications.DeleteByUserID(ctx, step.UserID)
		return err
	case domainService.StepBlogPostsByAuthor:
		_, err := s.blogPosts.DeleteByAuthorID(ctx, step.UserID)
		return err
	case domainService.StepUser:
		return s.users.DeleteByID(ctx, step.UserID)
	default:
		return fmt.Errorf("unknown cascade step target %q", step.Target)
	}
}
