package models

import "time"

// Notification types
const (
	NotificationReview  = "review"
	NotificationFollow  = "follow"
	NotificationMessage = "message"
)

// Notification represents an in-app notification for a user
type Notification struct {
	ID        int64      `json:"id" db:"id"`
	UserID    int64      `json:"userId" db:"user_id"`
	Type      string     `json:"type" db:"type"`
	ActorID   int64      `json:"actorId" db:"actor_id"`
	SubjectID int64      `json:"subjectId,omitempty" db:"subject_id"`
	Body      string     `json:"body" db:"body"`
	ReadAt    *time.Time `json:"readAt,omitempty" db:"read_at"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

// NotificationFilter represents filter parameters for listing notifications
type NotificationFilter struct {
	UnreadOnly bool `form:"unread"`
	Page       int  `form:"page"`
	PageSize   int  `form:"pageSize"`
}

// NotificationsResponse represents a paginated response of notifications
type NotificationsResponse struct {
	Data       []Notification `json:"data"`
	Total      int64          `json:"total"`
	Unread     int64          `json:"unread"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}
