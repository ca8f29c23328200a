package service

import "github.com/talentforge/jobboard-service/internal/domain/models"

// DigestBatchSize is the number of applications batched into one employer
// digest email.
const DigestBatchSize = 5

// DigestDue reports whether a digest must be sent after an application pushes
// the job's running total to totalCount. Digests fire exactly at whole
// multiples of the batch size, so the first one requires a full batch.
func DigestDue(totalCount int64, batchSize int) bool {
	if batchSize <= 0 || totalCount <= 0 {
		return false
	}
	return totalCount%int64(batchSize) == 0
}

// OrderForDigest reverses a newest-first applicant slice so the digest
// presents applicants oldest-first. The input is not modified.
func OrderForDigest(newestFirst []models.Applicant) []models.Applicant {
	out := make([]models.Applicant, len(newestFirst))
	for i, a := range newestFirst {
		out[len(newestFirst)-1-i] = a
	}
	return out
}
