package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentforge/jobboard-service/internal/domain/models"
	"github.com/talentforge/jobboard-service/internal/domain/repository"
)

// NotificationService exposes the in-app notification feed.
type NotificationService struct {
	notifications repository.NotificationRepository
	logger        *zap.Logger
}

func NewNotificationService(notifications repository.NotificationRepository, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		logger:        logger,
	}
}

// List returns the user's notifications, optionally only unread ones.
func (s *NotificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*models.Notification, error) {
	return s.notifications.ListByUser(ctx, userID, unreadOnly)
}

// MarkRead marks one of the user's notifications read. The user scope keeps
// anyone from marking someone else's notification.
func (s *NotificationService) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	return s.notifications.MarkRead(ctx, id, userID)
}

// MarkAllRead marks all of the user's notifications read and returns how
// many changed.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifications.MarkAllRead(ctx, userID)
}
