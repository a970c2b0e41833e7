package store

import (
	"context"
	"errors"
	"fmt"

	"gamereviews/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var _ Store = (*GormStore)(nil)

func (s *GormStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *GormStore) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *GormStore) GetUser(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFound("get user", err)
	}
	return &user, nil
}

func (s *GormStore) GetReview(ctx context.Context, reviewID string) (*models.Review, error) {
	var review models.Review
	if err := s.db.WithContext(ctx).Where("review_id = ?", reviewID).First(&review).Error; err != nil {
		return nil, notFound("get review", err)
	}
	return &review, nil
}

// ListReviews returns every review with the number of comments on it,
// newest first. Reviews without comments are included with a count of 0.
func (s *GormStore) ListReviews(ctx context.Context) ([]models.ReviewSummary, error) {
	var reviews []models.ReviewSummary
	err := s.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("reviews.*, COUNT(comments.comment_id)::INT AS comment_count").
		Joins("LEFT JOIN comments ON comments.review_id = reviews.review_id").
		Group("reviews.review_id").
		Order("reviews.created_at DESC, reviews.review_id ASC").
		Scan(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// IncrementReviewVotes adds inc to the review's votes in a single UPDATE and
// returns the updated row.
func (s *GormStore) IncrementReviewVotes(ctx context.Context, reviewID string, inc int) (*models.Review, error) {
	var review models.Review
	result := s.db.WithContext(ctx).
		Model(&review).
		Clauses(clause.Returning{}).
		Where("review_id = ?", reviewID).
		UpdateColumn("votes", gorm.Expr("votes + ?", inc))
	if result.Error != nil {
		return nil, fmt.Errorf("increment review votes: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &review, nil
}

func (s *GormStore) ListComments(ctx context.Context, reviewID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Where("review_id = ?", reviewID).
		Order("created_at ASC, comment_id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// InsertComment creates the row and fills in the generated comment_id.
func (s *GormStore) InsertComment(ctx context.Context, comment *models.Comment) error {
	if err := s.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func notFound(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
