package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/talentforge/jobboard-service/internal/domain/models"
)

func TestDigestDue_ThresholdBoundaries(t *testing.T) {
	due := []int64{5, 10, 15, 100}
	notDue := []int64{1, 2, 3, 4, 6, 7, 8, 9, 11, 99}

	for _, n := range due {
		assert.True(t, DigestDue(n, DigestBatchSize), "count %d", n)
	}
	for _, n := range notDue {
		assert.False(t, DigestDue(n, DigestBatchSize), "count %d", n)
	}
}

func TestDigestDue_DegenerateInputs(t *testing.T) {
	assert.False(t, DigestDue(0, DigestBatchSize))
	assert.False(t, DigestDue(-5, DigestBatchSize))
	assert.False(t, DigestDue(10, 0))
	assert.False(t, DigestDue(10, -1))
}

func TestOrderForDigest_ReversesWithoutMutating(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	newestFirst := make([]models.Applicant, 5)
	for i := range newestFirst {
		newestFirst[i] = models.Applicant{
			ApplicationID: uuid.New(),
			FullName:      "Applicant",
			AppliedAt:     base.Add(-time.Duration(i) * time.Hour),
		}
	}

	ordered := OrderForDigest(newestFirst)

	assert.Len(t, ordered, 5)
	for i := 1; i < len(ordered); i++ {
		assert.True(t, ordered[i].AppliedAt.After(ordered[i-1].AppliedAt), "digest must present applicants oldest-first")
	}
	// Input untouched.
	assert.True(t, newestFirst[0].AppliedAt.After(newestFirst[4].AppliedAt))
}

func TestOrderForDigest_Empty(t *testing.T) {
	assert.Empty(t, OrderForDigest(nil))
}
