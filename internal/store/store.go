// Package store is the data access layer. It runs single parameterized
// statements and reports what the database returned; it applies no business rules.
package store

import (
	"context"
	"errors"

	"gamereviews/internal/models"
)

// ErrNotFound is returned by single-row lookups that match nothing.
var ErrNotFound = errors.New("record not found")

// Store is the set of queries the services layer depends on.
//
// Review identifiers are passed through as the caller supplied them. The
// database casts them to its integer type and rejects values that are not
// integers or do not fit.
type Store interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, username string) (*models.User, error)

	GetReview(ctx context.Context, reviewID string) (*models.Review, error)
	ListReviews(ctx context.Context) ([]models.ReviewSummary, error)
	IncrementReviewVotes(ctx context.Context, reviewID string, inc int) (*models.Review, error)

	ListComments(ctx context.Context, reviewID string) ([]models.Comment, error)
	InsertComment(ctx context.Context, comment *models.Comment) error

	Ping(ctx context.Context) error
}
