package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	domainErrors "github.com/talentforge/jobboard-service/internal/domain/errors"
	"github.com/talentforge/jobboard-service/internal/domain/models"
	"github.com/talentforge/jobboard-service/internal/domain/repository"
	"github.com/talentforge/jobboard-service/internal/infrastructure/security"
)

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) error
}

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	IssueAccessToken(user *models.User) (string, time.Time, error)
}

// AuthService handles registration and password login.
type AuthService struct {
	users     repository.UserRepository
	passwords PasswordHasher
	tokens    TokenIssuer
	logger    *zap.Logger
}

func NewAuthService(users repository.UserRepository, passwords PasswordHasher, tokens TokenIssuer, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
		logger:    logger,
	}
}

// Register creates a new account. Self-registration is limited to the
// job_seeker and employer roles; admin accounts are provisioned out of band.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if req.Role != models.RoleJobSeeker && req.Role != models.RoleEmployer {
		return nil, domainErrors.ErrInvalidRole
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.NewUser(strings.ToLower(strings.TrimSpace(req.Email)), hash, req.FullName, req.Role)
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))
	return user, nil
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password collapse into the same error so the endpoint does not leak
// which accounts exist.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, domainErrors.ErrUserNotFound) {
			return nil, domainErrors.ErrWrongPassword
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domainErrors.ErrUserInactive
	}

	if err := s.passwords.Verify(req.Password, user.PasswordHash); err != nil {
		if errors.Is(err, security.ErrPasswordHashMismatch) {
			return nil, domainErrors.ErrWrongPassword
		}
		return nil, fmt.Errorf("verify password: %w", err)
	}

	token, expiresAt, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &models.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}
