package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainErrors "github.com/talentforge/jobboard-service/internal/domain/errors"
	"github.com/talentforge/jobboard-service/internal/domain/models"
	"github.com/talentforge/jobboard-service/internal/infrastructure/security"
)

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Verify(password, encodedHash string) error {
	args := m.Called(password, encodedHash)
	return args.Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) IssueAccessToken(user *models.User) (string, time.Time, error) {
	args := m.Called(user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func newAuthServiceFixture() (*MockUserRepository, *MockPasswordHasher, *MockTokenIssuer, *AuthService) {
	users := new(MockUserRepository)
	passwords := new(MockPasswordHasher)
	tokens := new(MockTokenIssuer)
	svc := NewAuthService(users, passwords, tokens, zap.NewNop())
	return users, passwords, tokens, svc
}

func TestRegister_JobSeeker(t *testing.T) {
	users, passwords, _, svc := newAuthServiceFixture()

	passwords.On("Hash", "s3cret-pass").Return("$argon2id$...", nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "sam@example.com" && u.Role == models.RoleJobSeeker && u.IsActive
	})).Return(nil)

	user, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "  Sam@Example.com ",
		Password: "s3cret-pass",
		FullName: "Sam Seeker",
		Role:     models.RoleJobSeeker,
	})

	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", user.Email)
	users.AssertExpectations(t)
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	users, _, _, svc := newAuthServiceFixture()

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "root@example.com",
		Password: "s3cret-pass",
		FullName: "Root",
		Role:     models.RoleSuperAdmin,
	})

	assert.ErrorIs(t, err, domainErrors.ErrInvalidRole)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	users, passwords, tokens, svc := newAuthServiceFixture()
	user := models.NewUser("sam@example.com", "$argon2id$...", "Sam Seeker", models.RoleJobSeeker)
	expires := time.Now().Add(time.Hour)

	users.On("FindByEmail", mock.Anything, "sam@example.com").Return(user, nil)
	passwords.On("Verify", "s3cret-pass", user.PasswordHash).Return(nil)
	tokens.On("IssueAccessToken", user).Return("token-abc", expires, nil)

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "sam@example.com",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-abc", resp.AccessToken)
	assert.Equal(t, user, resp.User)
}

func TestLogin_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	users, _, _, svc := newAuthServiceFixture()

	users.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, domainErrors.ErrUserNotFound)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, domainErrors.ErrWrongPassword)
}

func TestLogin_WrongPassword(t *testing.T) {
	users, passwords, _, svc := newAuthServiceFixture()
	user := models.NewUser("sam@example.com", "$argon2id$...", "Sam Seeker", models.RoleJobSeeker)

	users.On("FindByEmail", mock.Anything, "sam@example.com").Return(user, nil)
	passwords.On("Verify", "wrong", user.PasswordHash).Return(security.ErrPasswordHashMismatch)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "sam@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, domainErrors.ErrWrongPassword)
}

func TestLogin_InactiveUser(t *testing.T) {
	users, _, _, svc := newAuthServiceFixture()
	user := models.NewUser("sam@example.com", "$argon2id$...", "Sam Seeker", models.RoleJobSeeker)
	user.IsActive = false

	users.On("FindByEmail", mock.Anything, "sam@example.com").Return(user, nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "sam@example.com",
		Password: "s3cret-pass",
	})

	assert.ErrorIs(t, err, domainErrors.ErrUserInactive)
}
