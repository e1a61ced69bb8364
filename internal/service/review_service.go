package service

import (
	"fmt"
	"math"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/models"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/repository"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/stats"
)

// ReviewService handles business logic for reviews and rating aggregates
type ReviewService struct {
	reviewRepo       *repository.ReviewRepository
	locationRepo     *repository.LocationRepository
	notificationRepo *repository.NotificationRepository
}

// NewReviewService creates a new review service
func NewReviewService(
	reviewRepo *repository.ReviewRepository,
	locationRepo *repository.LocationRepository,
	notificationRepo *repository.NotificationRepository,
) *ReviewService {
	return &ReviewService{
		reviewRepo:       reviewRepo,
		locationRepo:     locationRepo,
		notificationRepo: notificationRepo,
	}
}

// Create writes a review for a location, one per user per location
func (s *ReviewService) Create(userID, locationID int64, req models.CreateReviewRequest) (*models.Review, error) {
	loc, err := s.locationRepo.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, ErrNotFound
	}

	existing, err := s.reviewRepo.GetByLocationAndUser(locationID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateReview
	}

	review := &models.Review{
		LocationID: locationID,
		UserID:     userID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	if err := s.refreshRatingStats(locationID); err != nil {
		return nil, err
	}

	// Notify the location owner; reviewing your own spot stays silent.
	if loc.UserID != userID {
		n := &models.Notification{
			UserID:    loc.UserID,
			Type:      models.NotificationReview,
			ActorID:   userID,
			SubjectID: locationID,
			Body:      fmt.Sprintf("New review on %s", loc.Name),
		}
		if err := s.notificationRepo.Create(n); err != nil {
			return nil, err
		}
	}

	return review, nil
}

// Update edits a review owned by the user and refreshes the aggregates
func (s *ReviewService) Update(userID, reviewID int64, req models.UpdateReviewRequest) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrNotFound
	}
	if review.UserID != userID {
		return nil, ErrForbidden
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	if err := s.refreshRatingStats(review.LocationID); err != nil {
		return nil, err
	}
	return review, nil
}

// Delete removes a review owned by the user and refreshes the aggregates
func (s *ReviewService) Delete(userID, reviewID int64) error {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrNotFound
	}
	if review.UserID != userID {
		return ErrForbidden
	}

	if err := s.reviewRepo.Delete(reviewID); err != nil {
		return err
	}
	return s.refreshRatingStats(review.LocationID)
}

// ListByLocation retrieves reviews for a location with pagination
func (s *ReviewService) ListByLocation(locationID int64, filter models.ReviewFilter) (*models.ReviewsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}

	reviews, total, err := s.reviewRepo.ListByLocation(locationID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.PageSize)))
	return &models.ReviewsResponse{
		Data:       reviews,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// Summary aggregates the ratings of a location
func (s *ReviewService) Summary(locationID int64) (*models.RatingSummary, error) {
	loc, err := s.locationRepo.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, ErrNotFound
	}

	ratings, err := s.reviewRepo.RatingsForLocation(locationID)
	if err != nil {
		return nil, err
	}

	histogram := make(map[int]int)
	for _, r := range ratings {
		histogram[int(r)]++
	}

	return &models.RatingSummary{
		LocationID: locationID,
		Average:    stats.Mean(ratings),
		Count:      int64(len(ratings)),
		Median:     stats.Median(ratings),
		P90:        stats.Percentile(ratings, 90),
		Histogram:  histogram,
	}, nil
}

func (s *ReviewService) refreshRatingStats(locationID int64) error {
	ratings, err := s.reviewRepo.RatingsForLocation(locationID)
	if err != nil {
		return err
	}
	return s.locationRepo.UpdateRatingStats(locationID, stats.Mean(ratings), int64(len(ratings)))
}
