package service

import (
	"fmt"
	"math"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/models"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/repository"
)

// NotificationService handles business logic for notifications
type NotificationService struct {
	notificationRepo *repository.NotificationRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(notificationRepo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// List retrieves a user's notifications with pagination
func (s *NotificationService) List(userID int64, filter models.NotificationFilter) (*models.NotificationsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}

	notifications, total, err := s.notificationRepo.List(userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := s.notificationRepo.UnreadCount(userID)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.PageSize)))
	return &models.NotificationsResponse{
		Data:       notifications,
		Total:      total,
		Unread:     unread,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// MarkRead marks one notification as read
func (s *NotificationService) MarkRead(userID, notificationID int64) error {
	ok, err := s.notificationRepo.MarkRead(userID, notificationID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// MarkAllRead marks every unread notification of a user as read
func (s *NotificationService) MarkAllRead(userID int64) error {
	return s.notificationRepo.MarkAllRead(userID)
}
