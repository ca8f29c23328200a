package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/talentforge/jobboard-service/internal/domain/errors"
	"github.com/talentforge/jobboard-service/internal/domain/models"
	"github.com/talentforge/jobboard-service/internal/domain/repository"
)

// pgxNotificationRepository implements repository.NotificationRepository.
type pgxNotificationRepository struct {
	db *pgxpool.Pool
}

// NewPgxNotificationRepository creates a new notification repository.
func NewPgxNotificationRepository(db *pgxpool.Pool) repository.NotificationRepository {
	return &pgxNotificationRepository{db: db}
}

func (r *pgxNotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, kind, title, body, read_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := querierFrom(ctx, r.db).Exec(ctx, query,
		n.ID, n.UserID, n.Kind, n.Title, n.Body, n.ReadAt, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *pgxNotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*models.Notification, error) {
	query := `
		SELECT id, user_id, kind, title, body, read_at, created_at
		FROM notifications WHERE user_id = $1`
	if unreadOnly {
		query += ` AND read_at IS NULL`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := querierFrom(ctx, r.db).Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		n := &models.Notification{}
		if err := rows.Scan(&n.ID, &n.UserID, &n.Kind, &n.Title, &n.Body, &n.ReadAt, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *pgxNotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := querierFrom(ctx, r.db).Exec(ctx,
		`UPDATE notifications SET read_at = now() WHERE id = $1 AND user_id = $2 AND read_at IS NULL`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotificationNotFound
	}
	return nil
}

func (r *pgxNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := querierFrom(ctx, r.db).Exec(ctx,
		`UPDATE notifications SET read_at = now() WHERE user_id = $1 AND read_at IS NULL`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *pgxNotificationRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := querierFrom(ctx, r.db).Exec(ctx,
		`DELETE FROM notifications WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete notifications: %w", err)
	}
	return tag.RowsAffected(), nil
}
