package services

import (
	"context"
	"errors"

	"gamereviews/internal/apperr"
	"gamereviews/internal/models"
	"gamereviews/internal/store"

	"github.com/go-playground/validator/v10"
)

// NewComment is the caller-supplied part of a comment. Anything else in the
// request body is dropped before it gets here.
type NewComment struct {
	Username string `json:"username" validate:"required"`
	Body     string `json:"body" validate:"required"`
}

type CommentService struct {
	store    store.Store
	validate *validator.Validate
}

func NewCommentService(s store.Store) *CommentService {
	return &CommentService{
		store:    s,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ListComments returns the review's comments oldest first. A review with no
// comments yields an empty slice.
func (s *CommentService) ListComments(ctx context.Context, reviewID string) ([]models.Comment, error) {
	if _, err := requireReview(ctx, s.store, reviewID); err != nil {
		return nil, err
	}

	comments, err := s.store.ListComments(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// AddComment checks, in order: the review exists, both fields are non-empty,
// the author exists. Only then is the comment inserted.
func (s *CommentService) AddComment(ctx context.Context, reviewID string, in NewComment) (*models.Comment, error) {
	review, err := requireReview(ctx, s.store, reviewID)
	if err != nil {
		return nil, err
	}

	if err := s.validate.Struct(in); err != nil {
		return nil, apperr.ErrInputDataMissing
	}

	if _, err := s.store.GetUser(ctx, in.Username); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.ErrUsernameNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		ReviewID: review.ReviewID,
		Author:   in.Username,
		Body:     in.Body,
		Votes:    models.DefaultCommentVotes,
	}
	if err := s.store.InsertComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
