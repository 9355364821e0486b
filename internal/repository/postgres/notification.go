package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"renthive-backend/internal/domain"
	"renthive-backend/internal/logger"
	"renthive-backend/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	logger.EnterMethod("notificationRepository.Create", "targetUserID", n.TargetUserID, "title", n.Title)

	query := `INSERT INTO notifications (target_user_id, event_type, title, message, link, is_read, related_item_id, related_user_id, related_user_name, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_on`
	logger.DatabaseCall("INSERT", "notifications", "targetUserID", n.TargetUserID)

	err := r.db.QueryRowContext(ctx, query, n.TargetUserID, n.EventType, n.Title, n.Message,
		n.Link, n.IsRead, n.RelatedItemID, n.RelatedUserID, n.RelatedUserName, time.Now()).Scan(&n.ID, &n.CreatedOn)
	logger.DatabaseResult("INSERT", 1, err, "notificationID", n.ID)

	if err != nil {
		logger.ExitMethodWithError("notificationRepository.Create", err, "targetUserID", n.TargetUserID)
	} else {
		logger.ExitMethod("notificationRepository.Create", "notificationID", n.ID)
	}
	return err
}

func (r *notificationRepository) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	var count int32
	countQuery := `SELECT count(*) FROM notifications WHERE target_user_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, userID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, target_user_id, event_type, title, message, COALESCE(link, ''), is_read, related_item_id, related_user_id, COALESCE(related_user_name, ''), created_on
	          FROM notifications WHERE target_user_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notes []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.TargetUserID, &n.EventType, &n.Title, &n.Message, &n.Link,
			&n.IsRead, &n.RelatedItemID, &n.RelatedUserID, &n.RelatedUserName, &n.CreatedOn); err != nil {
			return nil, 0, err
		}
		notes = append(notes, n)
	}
	return notes, count, rows.Err()
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id, userID int32) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND target_user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: notification %d", domain.ErrNotFound, id)
	}
	return nil
}
