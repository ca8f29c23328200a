package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/talentforge/jobboard-service/internal/domain/models"
)

// Hand-written testify mocks for the repository and infrastructure
// interfaces the services depend on.

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, page, perPage int) ([]*models.User, int64, error) {
	args := m.Called(ctx, page, perPage)
	var users []*models.User
	if args.Get(0) != nil {
		users = args.Get(0).([]*models.User)
	}
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProfileRepository struct{ mock.Mock }

func (m *MockProfileRepository) Upsert(ctx context.Context, profile *models.JobSeekerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.JobSeekerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobSeekerProfile), args.Error(1)
}

func (m *MockProfileRepository) SetResumeURL(ctx context.Context, userID uuid.UUID, url string) error {
	args := m.Called(ctx, userID, url)
	return args.Error(0)
}

func (m *MockProfileRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCareerHistoryRepository struct{ mock.Mock }

func (m *MockCareerHistoryRepository) Create(ctx context.Context, entry *models.CareerHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockCareerHistoryRepository) ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]*models.CareerHistory, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CareerHistory), args.Error(1)
}

func (m *MockCareerHistoryRepository) Delete(ctx context.Context, id, profileID uuid.UUID) error {
	args := m.Called(ctx, id, profileID)
	return args.Error(0)
}

func (m *MockCareerHistoryRepository) DeleteByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).(int64), args.Error(1)
}

type MockCompanyRepository struct{ mock.Mock }

func (m *MockCompanyRepository) Create(ctx context.Context, company *models.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]*models.Company, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListIDsByEmployer(ctx context.Context, employerID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockCompanyRepository) Update(ctx context.Context, company *models.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	args := m.Called(ctx, id, approved)
	return args.Error(0)
}

func (m *MockCompanyRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Create(ctx context.Context, job *models.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) ListPublic(ctx context.Context, filter models.JobFilter) ([]*models.Job, int64, error) {
	args := m.Called(ctx, filter)
	var jobs []*models.Job
	if args.Get(0) != nil {
		jobs = args.Get(0).([]*models.Job)
	}
	return jobs, args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]*models.Job, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Job), args.Error(1)
}

func (m *MockJobRepository) ListIDsByEmployer(ctx context.Context, employerID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockJobRepository) Update(ctx context.Context, job *models.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	args := m.Called(ctx, id, approved)
	return args.Error(0)
}

func (m *MockJobRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockApplicationRepository struct{ mock.Mock }

func (m *MockApplicationRepository) Create(ctx context.Context, app *models.JobApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.JobApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobApplication), args.Error(1)
}

func (m *MockApplicationRepository) CountByJobID(ctx context.Context, jobID uuid.UUID) (int64, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApplicationRepository) ListRecentApplicants(ctx context.Context, jobID uuid.UUID, limit int) ([]models.Applicant, error) {
	args := m.Called(ctx, jobID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Applicant), args.Error(1)
}

func (m *MockApplicationRepository) ListByJobID(ctx context.Context, jobID uuid.UUID) ([]*models.JobApplication, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.JobApplication), args.Error(1)
}

func (m *MockApplicationRepository) ListBySeeker(ctx context.Context, seekerID uuid.UUID) ([]*models.JobApplication, error) {
	args := m.Called(ctx, seekerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.JobApplication), args.Error(1)
}

func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockApplicationRepository) DeleteByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (int64, error) {
	args := m.Called(ctx, jobIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApplicationRepository) DeleteBySeekerID(ctx context.Context, seekerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, seekerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockEngagementRepository struct{ mock.Mock }

func (m *MockEngagementRepository) Create(ctx context.Context, engagement *models.Engagement) error {
	args := m.Called(ctx, engagement)
	return args.Error(0)
}

func (m *MockEngagementRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Engagement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Engagement), args.Error(1)
}

func (m *MockEngagementRepository) FindToggle(ctx context.Context, userID, jobID uuid.UUID, kind models.EngagementKind) (*models.Engagement, error) {
	args := m.Called(ctx, userID, jobID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Engagement), args.Error(1)
}

func (m *MockEngagementRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEngagementRepository) ListComments(ctx context.Context, jobID uuid.UUID) ([]*models.Engagement, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Engagement), args.Error(1)
}

func (m *MockEngagementRepository) ListJobIDsByUserKind(ctx context.Context, userID uuid.UUID, kind models.EngagementKind) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockEngagementRepository) DeleteByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (int64, error) {
	args := m.Called(ctx, jobIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngagementRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*models.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockBlogRepository struct{ mock.Mock }

func (m *MockBlogRepository) Create(ctx context.Context, post *models.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockBlogRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) FindBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) ListPublished(ctx context.Context, page, perPage int) ([]*models.BlogPost, int64, error) {
	args := m.Called(ctx, page, perPage)
	var posts []*models.BlogPost
	if args.Get(0) != nil {
		posts = args.Get(0).([]*models.BlogPost)
	}
	return posts, args.Get(1).(int64), args.Error(2)
}

func (m *MockBlogRepository) Update(ctx context.Context, post *models.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockBlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBlogRepository) DeleteByAuthorID(ctx context.Context, authorID uuid.UUID) (int64, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).(int64), args.Error(1)
}

// MockTxManager runs the callback directly so the transactional flow is
// observable through the repository mocks.
type MockTxManager struct{ mock.Mock }

func (m *MockTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

type MockEventProducer struct{ mock.Mock }

func (m *MockEventProducer) PublishEvent(ctx context.Context, eventType string, subject string, data interface{}) error {
	args := m.Called(ctx, eventType, subject, data)
	return args.Error(0)
}

func (m *MockEventProducer) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockListingCache struct{ mock.Mock }

func (m *MockListingCache) Get(ctx context.Context, filter models.JobFilter) (*models.Page[*models.Job], error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page[*models.Job]), args.Error(1)
}

func (m *MockListingCache) Set(ctx context.Context, filter models.JobFilter, page *models.Page[*models.Job]) error {
	args := m.Called(ctx, filter, page)
	return args.Error(0)
}

func (m *MockListingCache) Invalidate(ctx context.Context) {
	m.Called(ctx)
}

type MockFileUploader struct{ mock.Mock }

func (m *MockFileUploader) Upload(ctx context.Context, prefix, ext string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, prefix, ext, data, contentType)
	return args.String(0), args.Error(1)
}
