package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainErrors "github.com/talentforge/jobboard-service/internal/domain/errors"
	"github.com/talentforge/jobboard-service/internal/domain/models"
)

type applicationServiceFixture struct {
	applications  *MockApplicationRepository
	jobs          *MockJobRepository
	companies     *MockCompanyRepository
	users         *MockUserRepository
	notifications *MockNotificationRepository
	txManager     *MockTxManager
	producer      *MockEventProducer
	svc           *ApplicationService
}

func newApplicationServiceFixture() *applicationServiceFixture {
	f := &applicationServiceFixture{
		applications:  new(MockApplicationRepository),
		jobs:          new(MockJobRepository),
		companies:     new(MockCompanyRepository),
		users:         new(MockUserRepository),
		notifications: new(MockNotificationRepository),
		txManager:     new(MockTxManager),
		producer:      new(MockEventProducer),
	}
	f.svc = NewApplicationService(
		f.applications, f.jobs, f.companies, f.users, f.notifications,
		f.txManager, f.producer, zap.NewNop(),
	)
	return f
}

func visibleJob() *models.Job {
	job := models.NewJob(uuid.New(), uuid.New(), "Backend Engineer")
	job.IsApproved = true
	return job
}

func (f *applicationServiceFixture) expectApply(job *models.Job, count int64) {
	f.jobs.On("FindByID", mock.Anything, job.ID).Return(job, nil)
	f.txManager.On("WithinTransaction", mock.Anything, mock.Anything).Return(nil)
	f.applications.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.applications.On("CountByJobID", mock.Anything, job.ID).Return(count, nil)
	f.notifications.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.producer.On("PublishEvent", mock.Anything, models.EventApplicationReceived, job.ID.String(), mock.Anything).Return(nil)
}

func TestApply_NoDigestBelowBatch(t *testing.T) {
	f := newApplicationServiceFixture()
	job := visibleJob()
	f.expectApply(job, 4)

	app, err := f.svc.Apply(context.Background(), job.ID, uuid.New(), models.ApplyRequest{CoverNote: "hello"})

	require.NoError(t, err)
	assert.Equal(t, models.StatusApplied, app.Status)
	f.applications.AssertNotCalled(t, "ListRecentApplicants", mock.Anything, mock.Anything, mock.Anything)
	f.producer.AssertNotCalled(t, "PublishEvent", mock.Anything, models.EventApplicationDigest, mock.Anything, mock.Anything)
}

func TestApply_DigestAtEveryFifth(t *testing.T) {
	for _, count := range []int64{5, 10, 15} {
		f := newApplicationServiceFixture()
		job := visibleJob()
		employer := models.NewUser("boss@example.com", "hash", "Erin Employer", models.RoleEmployer)
		employer.ID = job.EmployerID
		company := models.NewCompany(job.EmployerID, "Acme Corp", "")
		company.ID = job.CompanyID

		newestFirst := []models.Applicant{
			{FullName: "Fifth", AppliedAt: time.Now()},
			{FullName: "Fourth"},
			{FullName: "Third"},
			{FullName: "Second"},
			{FullName: "First"},
		}

		f.expectApply(job, count)
		f.applications.On("ListRecentApplicants", mock.Anything, job.ID, 5).Return(newestFirst, nil)
		f.users.On("FindByID", mock.Anything, job.EmployerID).Return(employer, nil)
		f.companies.On("FindByID", mock.Anything, job.CompanyID).Return(company, nil)
		f.producer.On("PublishEvent", mock.Anything, models.EventApplicationDigest, job.ID.String(),
			mock.MatchedBy(func(data interface{}) bool {
				event, ok := data.(models.ApplicationDigestEvent)
				if !ok || len(event.Applicants) != 5 {
					return false
				}
				// oldest first
				return event.Applicants[0].FullName == "First" &&
					event.Applicants[4].FullName == "Fifth" &&
					event.EmployerEmail == employer.Email &&
					event.TotalForJob == count
			})).Return(nil)

		_, err := f.svc.Apply(context.Background(), job.ID, uuid.New(), models.ApplyRequest{})

		require.NoError(t, err)
		f.producer.AssertExpectations(t)
	}
}

func TestApply_DuplicateApplication(t *testing.T) {
	f := newApplicationServiceFixture()
	job := visibleJob()

	f.jobs.On("FindByID", mock.Anything, job.ID).Return(job, nil)
	f.txManager.On("WithinTransaction", mock.Anything, mock.Anything).Return(nil)
	f.applications.On("Create", mock.Anything, mock.Anything).Return(domainErrors.ErrDuplicateApplication)

	_, err := f.svc.Apply(context.Background(), job.ID, uuid.New(), models.ApplyRequest{})

	assert.ErrorIs(t, err, domainErrors.ErrDuplicateApplication)
	f.applications.AssertNotCalled(t, "CountByJobID", mock.Anything, mock.Anything)
	f.producer.AssertNotCalled(t, "PublishEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApply_InvisibleJob(t *testing.T) {
	f := newApplicationServiceFixture()
	job := models.NewJob(uuid.New(), uuid.New(), "Hidden Role") // not approved

	f.jobs.On("FindByID", mock.Anything, job.ID).Return(job, nil)

	_, err := f.svc.Apply(context.Background(), job.ID, uuid.New(), models.ApplyRequest{})

	assert.ErrorIs(t, err, domainErrors.ErrJobNotVisible)
	f.applications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApply_ExpiredJob(t *testing.T) {
	f := newApplicationServiceFixture()
	job := visibleJob()
	past := time.Now().Add(-24 * time.Hour)
	job.ExpiresAt = &past

	f.jobs.On("FindByID", mock.Anything, job.ID).Return(job, nil)

	_, err := f.svc.Apply(context.Background(), job.ID, uuid.New(), models.ApplyRequest{})

	assert.ErrorIs(t, err, domainErrors.ErrJobNotVisible)
}

func TestApply_DigestPublishFailureDoesNotFailApply(t *testing.T) {
	f := newApplicationServiceFixture()
	job := visibleJob()
	employer := models.NewUser("boss@example.com", "hash", "Erin Employer", models.RoleEmployer)
	employer.ID = job.EmployerID
	company := models.NewCompany(job.EmployerID, "Acme Corp", "")
	company.ID = job.CompanyID

	f.expectApply(job, 5)
	f.applications.On("ListRecentApplicants", mock.Anything, job.ID, 5).
		Return(make([]models.Applicant, 5), nil)
	f.users.On("FindByID", mock.Anything, job.EmployerID).Return(employer, nil)
	f.companies.On("FindByID", mock.Anything, job.CompanyID).Return(company, nil)
	f.producer.On("PublishEvent", mock.Anything, models.EventApplicationDigest, job.ID.String(), mock.Anything).
		Return(errors.New("broker unavailable"))

	app, err := f.svc.Apply(context.Background(), job.ID, uuid.New(), models.ApplyRequest{})

	require.NoError(t, err)
	assert.NotNil(t, app)
}

func TestUpdateStatus_LegalTransition(t *testing.T) {
	f := newApplicationServiceFixture()
	job := visibleJob()
	app := models.NewJobApplication(job.ID, uuid.New(), "")

	f.applications.On("FindByID", mock.Anything, app.ID).Return(app, nil)
	f.jobs.On("FindByID", mock.Anything, job.ID).Return(job, nil)
	f.txManager.On("WithinTransaction", mock.Anything, mock.Anything).Return(nil)
	f.applications.On("UpdateStatus", mock.Anything, app.ID, models.StatusUnderReview).Return(nil)
	f.notifications.On("Create", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
		return n.UserID == app.JobSeekerID && n.Kind == models.NotificationApplicationStatus
	})).Return(nil)

	updated, err := f.svc.UpdateStatus(context.Background(), app.ID, job.EmployerID, models.StatusUnderReview)

	require.NoError(t, err)
	assert.Equal(t, models.StatusUnderReview, updated.Status)
	f.notifications.AssertExpectations(t)
}

func TestUpdateStatus_IllegalTransition(t *testing.T) {
	f := newApplicationServiceFixture()
	job := visibleJob()
	app := models.NewJobApplication(job.ID, uuid.New(), "")

	f.applications.On("FindByID", mock.Anything, app.ID).Return(app, nil)
	f.jobs.On("FindByID", mock.Anything, job.ID).Return(job, nil)

	_, err := f.svc.UpdateStatus(context.Background(), app.ID, job.EmployerID, models.StatusHired)

	assert.ErrorIs(t, err, domainErrors.ErrInvalidStatusTransition)
	f.applications.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_NotOwner(t *testing.T) {
	f := newApplicationServiceFixture()
	job := visibleJob()
	app := models.NewJobApplication(job.ID, uuid.New(), "")

	f.applications.On("FindByID", mock.Anything, app.ID).Return(app, nil)
	f.jobs.On("FindByID", mock.Anything, job.ID).Return(job, nil)

	_, err := f.svc.UpdateStatus(context.Background(), app.ID, uuid.New(), models.StatusUnderReview)

	assert.ErrorIs(t, err, domainErrors.ErrForbidden)
}
