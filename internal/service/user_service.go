package service

import (
	"fmt"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/models"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/repository"
)

// UserService handles profile viewing and editing
type UserService struct {
	userRepo     *repository.UserRepository
	locationRepo *repository.LocationRepository
	followRepo   *repository.FollowRepository
}

// NewUserService creates a new user service
func NewUserService(
	userRepo *repository.UserRepository,
	locationRepo *repository.LocationRepository,
	followRepo *repository.FollowRepository,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		locationRepo: locationRepo,
		followRepo:   followRepo,
	}
}

// Profile assembles the public profile of a user. viewerID is 0 for
// anonymous requests.
func (s *UserService) Profile(userID, viewerID int64) (*models.Profile, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	locationCount, err := s.locationRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.followRepo.Counts(userID)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		User:           *user,
		LocationCount:  locationCount,
		FollowerCount:  stats.FollowerCount,
		FollowingCount: stats.FollowingCount,
	}

	if viewerID > 0 && viewerID != userID {
		following, err := s.followRepo.Exists(viewerID, userID)
		if err != nil {
			return nil, err
		}
		profile.IsFollowing = following
	}

	return profile, nil
}

// UpdateProfile applies the provided profile changes to the user
func (s *UserService) UpdateProfile(userID int64, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}

	if err := s.userRepo.UpdateProfile(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}
