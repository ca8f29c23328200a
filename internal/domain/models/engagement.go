package models

import (
	"time"

	"github.com/google/uuid"
)

// EngagementKind is the type of interaction between a user and a job.
type EngagementKind string

const (
	EngagementLike     EngagementKind = "like"
	EngagementComment  EngagementKind = "comment"
	EngagementFavorite EngagementKind = "favorite"
	EngagementInterest EngagementKind = "interest"
	EngagementBookmark EngagementKind = "bookmark"
)

// ValidEngagementKind reports whether k is a recognized kind.
func ValidEngagementKind(k EngagementKind) bool {
	switch k {
	case EngagementLike, EngagementComment, EngagementFavorite, EngagementInterest, EngagementBookmark:
		return true
	}
	return false
}

// Togglable reports whether k follows toggle semantics: existence means true
// and a repeat request removes the row. Comments are append-only instead.
func (k EngagementKind) Togglable() bool {
	return k != EngagementComment && ValidEngagementKind(k)
}

// Engagement links a user and a job with a kind. Non-comment kinds are unique
// per (user, job, kind); comments carry free-text content and may repeat.
type Engagement struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	JobID     uuid.UUID      `json:"job_id"`
	Kind      EngagementKind `json:"kind"`
	Content   string         `json:"content,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// NewEngagement creates an engagement row.
func NewEngagement(userID, jobID uuid.UUID, kind EngagementKind, content string) *Engagement {
	return &Engagement{
		ID:        uuid.New(),
		UserID:    userID,
		JobID:     jobID,
		Kind:      kind,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}
