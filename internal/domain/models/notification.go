package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind classifies in-app notifications.
type NotificationKind string

const (
	NotificationApplicationStatus NotificationKind = "application_status"
	NotificationNewApplication    NotificationKind = "new_application"
	NotificationCompanyApproved   NotificationKind = "company_approved"
	NotificationJobApproved       NotificationKind = "job_approved"
)

// Notification is an append-only record owned by one user. It is created as
// a side effect of state transitions elsewhere and only ever read or marked.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	Kind      NotificationKind `json:"kind"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	ReadAt    *time.Time       `json:"read_at,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// NewNotification creates an unread notification.
func NewNotification(userID uuid.UUID, kind NotificationKind, title, body string) *Notification {
	return &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      kind,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
}

// MarkRead stamps the notification as read if it is not already.
func (n *Notification) MarkRead() {
	if n.ReadAt == nil {
		now := time.Now().UTC()
		n.ReadAt = &now
	}
}
