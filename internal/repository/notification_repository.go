package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/models"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *sql.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create inserts a new notification and sets its ID and timestamp
func (r *NotificationRepository) Create(n *models.Notification) error {
	now := time.Now().UTC()
	result, err := r.db.Exec(`
		INSERT INTO notifications (user_id, type, actor_id, subject_id, body, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		n.UserID, n.Type, n.ActorID, n.SubjectID, n.Body, now,
	)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get notification id: %w", err)
	}
	n.ID = id
	n.CreatedAt = now
	return nil
}

// List retrieves notifications for a user with pagination, newest first
func (r *NotificationRepository) List(userID int64, filter models.NotificationFilter) ([]models.Notification, int64, error) {
	where := "WHERE user_id = ?"
	args := []interface{}{userID}
	if filter.UnreadOnly {
		where += " AND read_at IS NULL"
	}

	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM notifications "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	query := `
		SELECT id, user_id, type, actor_id, subject_id, body, read_at, created_at
		FROM notifications ` + where + `
		ORDER BY id DESC
		LIMIT ? OFFSET ?`
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.ActorID, &n.SubjectID, &n.Body, &n.ReadAt, &n.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, total, rows.Err()
}

// UnreadCount returns the number of unread notifications for a user
func (r *NotificationRepository) UnreadCount(userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow("SELECT COUNT(*) FROM notifications WHERE user_id = ? AND read_at IS NULL", userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead marks one notification of a user as read
func (r *NotificationRepository) MarkRead(userID, notificationID int64) (bool, error) {
	result, err := r.db.Exec(
		"UPDATE notifications SET read_at = ? WHERE id = ? AND user_id = ? AND read_at IS NULL",
		time.Now().UTC(), notificationID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark notification read: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return affected > 0, nil
}

// MarkAllRead marks every unread notification of a user as read
func (r *NotificationRepository) MarkAllRead(userID int64) error {
	_, err := r.db.Exec(
		"UPDATE notifications SET read_at = ? WHERE user_id = ? AND read_at IS NULL",
		time.Now().UTC(), userID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
