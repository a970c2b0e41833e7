package services

import (
	"context"
	"errors"
	"math"

	"gamereviews/internal/apperr"
	"gamereviews/internal/models"
	"gamereviews/internal/store"
)

type ReviewService struct {
	store store.Store
}

func NewReviewService(s store.Store) *ReviewService {
	return &ReviewService{store: s}
}

// GetReview returns the review with the given id. The id is not parsed here;
// a malformed id fails in the store and is classified as bad input.
func (s *ReviewService) GetReview(ctx context.Context, reviewID string) (*models.Review, error) {
	return requireReview(ctx, s.store, reviewID)
}

// ListReviews returns all reviews with comment counts, newest first.
func (s *ReviewService) ListReviews(ctx context.Context) ([]models.ReviewSummary, error) {
	reviews, err := s.store.ListReviews(ctx)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.ReviewSummary{}
	}
	return reviews, nil
}

// PatchReviewVotes adds incVotes (possibly negative) to the review's votes.
// A nil incVotes means the request carried no usable integer.
func (s *ReviewService) PatchReviewVotes(ctx context.Context, reviewID string, incVotes *int) (*models.Review, error) {
	if _, err := requireReview(ctx, s.store, reviewID); err != nil {
		return nil, err
	}

	if incVotes == nil {
		return nil, apperr.ErrInvalidInput
	}
	// votes is int4; the driver refuses to encode anything wider.
	if *incVotes > math.MaxInt32 || *incVotes < math.MinInt32 {
		return nil, apperr.ErrValueOutOfRange
	}

	review, err := s.store.IncrementReviewVotes(ctx, reviewID, *incVotes)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return review, nil
}

// requireReview is the existence check every review-scoped operation runs first.
func requireReview(ctx context.Context, s store.Store, reviewID string) (*models.Review, error) {
	review, err := s.GetReview(ctx, reviewID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return review, nil
}
