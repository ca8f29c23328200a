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
)

// ProfileService owns job-seeker profiles, career history and resume
// uploads.
type ProfileService struct {
	profiles      repository.ProfileRepository
	careerHistory repository.CareerHistoryRepository
	uploader      FileUploader
	logger        *zap.Logger
}

func NewProfileService(profiles repository.ProfileRepository, careerHistory repository.CareerHistoryRepository, uploader FileUploader, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		profiles:      profiles,
		careerHistory: careerHistory,
		uploader:      uploader,
		logger:        logger,
	}
}

// Get returns the seeker's profile.
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*models.JobSeekerProfile, error) {
	return s.profiles.FindByUserID(ctx, userID)
}

// Update creates or edits the seeker's profile. The first update creates
// the row; registration alone does not.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.JobSeekerProfile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrProfileNotFound) {
			return nil, err
		}
		profile = models.NewJobSeekerProfile(userID)
	}

	profile.Headline = req.Headline
	profile.Bio = req.Bio
	profile.Phone = req.Phone
	if req.Skills != nil {
		profile.Skills = req.Skills
	}
	profile.ExperienceYears = req.ExperienceYears
	profile.UpdatedAt = time.Now().UTC()

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UploadResume stores the resume file and records its URL on the profile.
// The profile must already exist.
func (s *ProfileService) UploadResume(ctx context.Context, userID uuid.UUID, data []byte, ext, contentType string) (*models.JobSeekerProfile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	url, err := s.uploader.Upload(ctx, "resumes", ext, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("upload resume: %w", err)
	}

	if err := s.profiles.SetResumeURL(ctx, userID, url); err != nil {
		return nil, err
	}
	profile.ResumeURL = url
	profile.UpdatedAt = time.Now().UTC()
	return profile, nil
}

// AddCareerEntry appends an employment entry to the seeker's profile.
func (s *ProfileService) AddCareerEntry(ctx context.Context, userID uuid.UUID, req models.CareerHistoryRequest) (*models.CareerHistory, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := &models.CareerHistory{
		ID:          uuid.New(),
		ProfileID:   profile.ID,
		CompanyName: req.CompanyName,
		Title:       req.Title,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.careerHistory.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ListCareer returns the seeker's employment entries.
func (s *ProfileService) ListCareer(ctx context.Context, userID uuid.UUID) ([]*models.CareerHistory, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.careerHistory.ListByProfileID(ctx, profile.ID)
}

// DeleteCareerEntry removes one employment entry. The profile scope keeps a
// seeker from deleting entries that belong to someone else.
func (s *ProfileService) DeleteCareerEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return s.careerHistory.Delete(ctx, entryID, profile.ID)
}
