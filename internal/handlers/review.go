package handlers

import (
	"context"
	"net/http"

	"gamereviews/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReviewService interface {
	GetReview(ctx context.Context, reviewID string) (*models.Review, error)
	ListReviews(ctx context.Context) ([]models.ReviewSummary, error)
	PatchReviewVotes(ctx context.Context, reviewID string, incVotes *int) (*models.Review, error)
}

type ReviewHandler struct {
	reviews ReviewService
	log     *zap.Logger
}

func NewReviewHandler(reviews ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, log: log}
}

type patchReviewRequest struct {
	IncVotes *int `json:"inc_votes"`
}

// Get GET /api/reviews/:review_id
func (h *ReviewHandler) Get(c *gin.Context) {
	review, err := h.reviews.GetReview(c.Request.Context(), c.Param("review_id"))
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "review", review)
}

func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviews.ListReviews(c.Request.Context())
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "reviews", reviews)
}

// PatchVotes PATCH /api/reviews/:review_id
func (h *ReviewHandler) PatchVotes(c *gin.Context) {
	var req patchReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.IncVotes = nil // rejected after the existence check
	}

	review, err := h.reviews.PatchReviewVotes(c.Request.Context(), c.Param("review_id"), req.IncVotes)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "review", review)
}
