package service

import (
	domainErrors "github.com/talentforge/jobboard-service/internal/domain/errors"
	"github.com/talentforge/jobboard-service/internal/domain/models"
)

// statusTransitions holds every legal application status move. Rejection is
// reachable directly from applied and under_review; no other move skips a
// state.
var statusTransitions = map[models.ApplicationStatus][]models.ApplicationStatus{
	models.StatusApplied:     {models.StatusUnderReview, models.StatusRejected},
	models.StatusUnderReview: {models.StatusShortlisted, models.StatusRejected},
	models.StatusShortlisted: {models.StatusHired},
	models.StatusRejected:    {},
	models.StatusHired:       {},
}

// CanTransition reports whether from -> to is a legal status move.
func CanTransition(from, to models.ApplicationStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransition checks a requested status move, distinguishing unknown
// status values from known-but-illegal moves.
func ValidateTransition(from, to models.ApplicationStatus) error {
	if !models.ValidApplicationStatus(from) || !models.ValidApplicationStatus(to) {
		return domainErrors.ErrInvalidApplicationStatus
	}
	if !CanTransition(from, to) {
		return domainErrors.ErrInvalidStatusTransition
	}
	return nil
}
