package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentforge/jobboard-service/internal/config"
	domainErrors "github.com/talentforge/jobboard-service/internal/domain/errors"
	"github.com/talentforge/jobboard-service/internal/domain/models"
)

func newTestJWTService(t *testing.T, ttl time.Duration) *JWTService {
	t.Helper()
	svc, err := NewJWTService(config.JWTConfig{
		Secret:         "test-secret-key-for-unit-tests",
		AccessTokenTTL: ttl,
		Issuer:         "jobboard-service-test",
	})
	require.NoError(t, err)
	return svc
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	user := models.NewUser("seeker@example.com", "hash", "Sam Seeker", models.RoleJobSeeker)

	token, expiresAt, err := svc.IssueAccessToken(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.RoleJobSeeker, claims.Role)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, -time.Minute)
	user := models.NewUser("seeker@example.com", "hash", "Sam Seeker", models.RoleJobSeeker)

	token, _, err := svc.IssueAccessToken(user)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.ErrorIs(t, err, domainErrors.ErrExpiredToken)
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	user := models.NewUser("seeker@example.com", "hash", "Sam Seeker", models.RoleJobSeeker)

	token, _, err := svc.IssueAccessToken(user)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token + "x")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidToken)
}

func TestJWTService_WrongIssuer(t *testing.T) {
	issuerA := newTestJWTService(t, time.Hour)
	issuerB, err := NewJWTService(config.JWTConfig{
		Secret:         "test-secret-key-for-unit-tests",
		AccessTokenTTL: time.Hour,
		Issuer:         "someone-else",
	})
	require.NoError(t, err)

	user := models.NewUser("seeker@example.com", "hash", "Sam Seeker", models.RoleJobSeeker)
	token, _, err := issuerB.IssueAccessToken(user)
	require.NoError(t, err)

	_, err = issuerA.ValidateAccessToken(token)
	assert.ErrorIs(t, err, domainErrors.ErrInvalidToken)
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	_, err := NewJWTService(config.JWTConfig{})
	assert.Error(t, err)
}
