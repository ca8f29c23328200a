package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainErrors "github.com/talentforge/jobboard-service/internal/domain/errors"
	"github.com/talentforge/jobboard-service/internal/domain/models"
	"github.com/talentforge/jobboard-service/internal/domain/repository"
)

// EngagementService owns likes, favorites, interests, bookmarks and
// comments on postings.
type EngagementService struct {
	engagements repository.EngagementRepository
	jobs        repository.JobRepository
	logger      *zap.Logger
}

func NewEngagementService(engagements repository.EngagementRepository, jobs repository.JobRepository, logger *zap.Logger) *EngagementService {
	return &EngagementService{
		engagements: engagements,
		jobs:        jobs,
		logger:      logger,
	}
}

// Toggle flips a toggle-kind engagement for the user on a visible job and
// reports the resulting state: true when the row now exists, false when the
// repeat request removed it.
func (s *EngagementService) Toggle(ctx context.Context, userID, jobID uuid.UUID, kind models.EngagementKind) (bool, error) {
	if !kind.Togglable() {
		return false, domainErrors.ErrInvalidEngagement
	}
	if err := s.requireVisibleJob(ctx, jobID); err != nil {
		return false, err
	}

	existing, err := s.engagements.FindToggle(ctx, userID, jobID, kind)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrEngagementNotFound) {
			return false, err
		}
		if err := s.engagements.Create(ctx, models.NewEngagement(userID, jobID, kind, "")); err != nil {
			return false, err
		}
		return true, nil
	}

	if err := s.engagements.DeleteByID(ctx, existing.ID); err != nil {
		return false, err
	}
	return false, nil
}

// Comment appends a comment to a visible job. Comments never toggle.
func (s *EngagementService) Comment(ctx context.Context, userID, jobID uuid.UUID, content string) (*models.Engagement, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainErrors.ErrEmptyComment
	}
	if err := s.requireVisibleJob(ctx, jobID); err != nil {
		return nil, err
	}

	comment := models.NewEngagement(userID, jobID, models.EngagementComment, content)
	if err := s.engagements.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns a job's comments, oldest first.
func (s *EngagementService) ListComments(ctx context.Context, jobID uuid.UUID) ([]*models.Engagement, error) {
	if err := s.requireVisibleJob(ctx, jobID); err != nil {
		return nil, err
	}
	return s.engagements.ListComments(ctx, jobID)
}

// DeleteComment removes one comment. Admins may remove any comment; other
// users only their own.
func (s *EngagementService) DeleteComment(ctx context.Context, commentID, userID uuid.UUID, isAdmin bool) error {
	// FindToggle only matches toggle kinds, so load through the generic path.
	comment, err := s.engagements.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.Kind != models.EngagementComment {
		return domainErrors.ErrEngagementNotFound
	}
	if !isAdmin && comment.UserID != userID {
		return domainErrors.ErrForbidden
	}
	return s.engagements.DeleteByID(ctx, comment.ID)
}

// ListEngagedJobs returns the jobs the user engaged with for one kind,
// e.g. the saved-jobs listing for bookmarks. Jobs that have since become
// invisible are filtered out.
func (s *EngagementService) ListEngagedJobs(ctx context.Context, userID uuid.UUID, kind models.EngagementKind) ([]*models.Job, error) {
	if !kind.Togglable() {
		return nil, domainErrors.ErrInvalidEngagement
	}

	jobIDs, err := s.engagements.ListJobIDsByUserKind(ctx, userID, kind)
	if err != nil {
		return nil, err
	}

	jobs := make([]*models.Job, 0, len(jobIDs))
	for _, id := range jobIDs {
		job, err := s.jobs.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, domainErrors.ErrJobNotFound) {
				continue
			}
			return nil, err
		}
		if job.IsVisible() {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

func (s *EngagementService) requireVisibleJob(ctx context.Context, jobID uuid.UUID) error {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return err
	}
	if !job.IsVisible() {
		return domainErrors.ErrJobNotVisible
	}
	return nil
}
