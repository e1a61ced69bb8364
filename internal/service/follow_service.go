package service

import (
	"fmt"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/models"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/repository"
)

// FollowService handles business logic for the follow graph
type FollowService struct {
	followRepo       *repository.FollowRepository
	userRepo         *repository.UserRepository
	notificationRepo *repository.NotificationRepository
}

// NewFollowService creates a new follow service
func NewFollowService(
	followRepo *repository.FollowRepository,
	userRepo *repository.UserRepository,
	notificationRepo *repository.NotificationRepository,
) *FollowService {
	return &FollowService{
		followRepo:       followRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

// Follow creates a follow edge from follower to followee
func (s *FollowService) Follow(followerID, followeeID int64) error {
	if followerID == followeeID {
		return ErrSelfFollow
	}

	followee, err := s.userRepo.GetByID(followeeID)
	if err != nil {
		return err
	}
	if followee == nil {
		return ErrNotFound
	}

	already, err := s.followRepo.Exists(followerID, followeeID)
	if err != nil {
		return err
	}
	if already {
		return nil
	}

	if err := s.followRepo.Create(followerID, followeeID); err != nil {
		return err
	}

	follower, err := s.userRepo.GetByID(followerID)
	if err != nil {
		return err
	}
	n := &models.Notification{
		UserID:  followeeID,
		Type:    models.NotificationFollow,
		ActorID: followerID,
		Body:    fmt.Sprintf("%s started following you", follower.Username),
	}
	return s.notificationRepo.Create(n)
}

// Unfollow removes a follow edge
func (s *FollowService) Unfollow(followerID, followeeID int64) error {
	return s.followRepo.Delete(followerID, followeeID)
}

// Followers lists the users following userID
func (s *FollowService) Followers(userID int64) ([]models.User, error) {
	return s.followRepo.Followers(userID)
}

// Following lists the users userID follows
func (s *FollowService) Following(userID int64) ([]models.User, error) {
	return s.followRepo.Following(userID)
}

// Stats returns the follower/following counters of a user
func (s *FollowService) Stats(userID int64) (models.FollowStats, error) {
	return s.followRepo.Counts(userID)
}
