package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainErrors "github.com/talentforge/jobboard-service/internal/domain/errors"
	"github.com/talentforge/jobboard-service/internal/domain/models"
)

func newEngagementServiceFixture() (*MockEngagementRepository, *MockJobRepository, *EngagementService) {
	engagements := new(MockEngagementRepository)
	jobs := new(MockJobRepository)
	svc := NewEngagementService(engagements, jobs, zap.NewNop())
	return engagements, jobs, svc
}

func TestToggle_CreatesWhenAbsent(t *testing.T) {
	engagements, jobs, svc := newEngagementServiceFixture()
	job := visibleJob()
	userID := uuid.New()

	jobs.On("FindByID", mock.Anything, job.ID).Return(job, nil)
	engagements.On("FindToggle", mock.Anything, userID, job.ID, models.EngagementLike).
		Return(nil, domainErrors.ErrEngagementNotFound)
	engagements.On("Create", mock.Anything, mock.MatchedBy(func(e *models.Engagement) bool {
		return e.UserID == userID && e.JobID == job.ID && e.Kind == models.EngagementLike
	})).Return(nil)

	active, err := svc.Toggle(context.Background(), userID, job.ID, models.EngagementLike)

	require.NoError(t, err)
	assert.True(t, active)
	engagements.AssertExpectations(t)
}

func TestToggle_RemovesWhenPresent(t *testing.T) {
	engagements, jobs, svc := newEngagementServiceFixture()
	job := visibleJob()
	userID := uuid.New()
	existing := models.NewEngagement(userID, job.ID, models.EngagementBookmark, "")

	jobs.On("FindByID", mock.Anything, job.ID).Return(job, nil)
	engagements.On("FindToggle", mock.Anything, userID, job.ID, models.EngagementBookmark).Return(existing, nil)
	engagements.On("DeleteByID", mock.Anything, existing.ID).Return(nil)

	active, err := svc.Toggle(context.Background(), userID, job.ID, models.EngagementBookmark)

	require.NoError(t, err)
	assert.False(t, active)
	engagements.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestToggle_RacingCreateSurfacesConflict(t *testing.T) {
	// Two concurrent toggles can both miss the existence check; the partial
	// unique index stops the second insert and the repository reports it as
	// a conflict rather than a generic failure.
	engagements, jobs, svc := newEngagementServiceFixture()
	job := visibleJob()
	userID := uuid.New()

	jobs.On("FindByID", mock.Anything, job.ID).Return(job, nil)
	engagements.On("FindToggle", mock.Anything, userID, job.ID, models.EngagementLike).
		Return(nil, domainErrors.ErrEngagementNotFound)
	engagements.On("Create", mock.Anything, mock.Anything).Return(domainErrors.ErrConflict)

	_, err := svc.Toggle(context.Background(), userID, job.ID, models.EngagementLike)

	assert.ErrorIs(t, err, domainErrors.ErrConflict)
}

func TestToggle_CommentKindRejected(t *testing.T) {
	engagements, _, svc := newEngagementServiceFixture()

	_, err := svc.Toggle(context.Background(), uuid.New(), uuid.New(), models.EngagementComment)

	assert.ErrorIs(t, err, domainErrors.ErrInvalidEngagement)
	engagements.AssertNotCalled(t, "FindToggle", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestToggle_InvisibleJob(t *testing.T) {
	_, jobs, svc := newEngagementServiceFixture()
	job := models.NewJob(uuid.New(), uuid.New(), "Hidden Role") // not approved

	jobs.On("FindByID", mock.Anything, job.ID).Return(job, nil)

	_, err := svc.Toggle(context.Background(), uuid.New(), job.ID, models.EngagementLike)

	assert.ErrorIs(t, err, domainErrors.ErrJobNotVisible)
}

func TestComment_EmptyContent(t *testing.T) {
	engagements, _, svc := newEngagementServiceFixture()

	_, err := svc.Comment(context.Background(), uuid.New(), uuid.New(), "   ")

	assert.ErrorIs(t, err, domainErrors.ErrEmptyComment)
	engagements.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestComment_Creates(t *testing.T) {
	engagements, jobs, svc := newEngagementServiceFixture()
	job := visibleJob()
	userID := uuid.New()

	jobs.On("FindByID", mock.Anything, job.ID).Return(job, nil)
	engagements.On("Create", mock.Anything, mock.MatchedBy(func(e *models.Engagement) bool {
		return e.Kind == models.EngagementComment && e.Content == "Looks great"
	})).Return(nil)

	comment, err := svc.Comment(context.Background(), userID, job.ID, "Looks great")

	require.NoError(t, err)
	assert.Equal(t, "Looks great", comment.Content)
}

func TestListEngagedJobs_FiltersInvisible(t *testing.T) {
	engagements, jobs, svc := newEngagementServiceFixture()
	userID := uuid.New()

	visible := visibleJob()
	hidden := models.NewJob(uuid.New(), uuid.New(), "Hidden Role")
	gone := uuid.New()

	engagements.On("ListJobIDsByUserKind", mock.Anything, userID, models.EngagementBookmark).
		Return([]uuid.UUID{visible.ID, hidden.ID, gone}, nil)
	jobs.On("FindByID", mock.Anything, visible.ID).Return(visible, nil)
	jobs.On("FindByID", mock.Anything, hidden.ID).Return(hidden, nil)
	jobs.On("FindByID", mock.Anything, gone).Return(nil, domainErrors.ErrJobNotFound)

	result, err := svc.ListEngagedJobs(context.Background(), userID, models.EngagementBookmark)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, visible.ID, result[0].ID)
}
