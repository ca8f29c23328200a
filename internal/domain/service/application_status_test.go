package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainErrors "github.com/talentforge/jobboard-service/internal/domain/errors"
	"github.com/talentforge/jobboard-service/internal/domain/models"
)

func TestValidateTransition_LegalMoves(t *testing.T) {
	legal := []struct{ from, to models.ApplicationStatus }{
		{models.StatusApplied, models.StatusUnderReview},
		{models.StatusApplied, models.StatusRejected},
		{models.StatusUnderReview, models.StatusShortlisted},
		{models.StatusUnderReview, models.StatusRejected},
		{models.StatusShortlisted, models.StatusHired},
	}
	for _, tc := range legal {
		assert.NoError(t, ValidateTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestValidateTransition_IllegalMoves(t *testing.T) {
	illegal := []struct{ from, to models.ApplicationStatus }{
		{models.StatusApplied, models.StatusShortlisted},
		{models.StatusApplied, models.StatusHired},
		{models.StatusUnderReview, models.StatusHired},
		{models.StatusShortlisted, models.StatusRejected},
		{models.StatusRejected, models.StatusUnderReview},
		{models.StatusHired, models.StatusRejected},
		{models.StatusUnderReview, models.StatusApplied},
	}
	for _, tc := range illegal {
		assert.ErrorIs(t, ValidateTransition(tc.from, tc.to), domainErrors.ErrInvalidStatusTransition, "%s -> %s", tc.from, tc.to)
	}
}

func TestValidateTransition_UnknownStatus(t *testing.T) {
	assert.ErrorIs(t, ValidateTransition("pending", models.StatusHired), domainErrors.ErrInvalidApplicationStatus)
	assert.ErrorIs(t, ValidateTransition(models.StatusApplied, "archived"), domainErrors.ErrInvalidApplicationStatus)
}
