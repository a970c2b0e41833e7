package handlers

import (
	"context"
	"net/http"

	"gamereviews/internal/models"
	"gamereviews/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CommentService interface {
	ListComments(ctx context.Context, reviewID string) ([]models.Comment, error)
	AddComment(ctx context.Context, reviewID string, in services.NewComment) (*models.Comment, error)
}

type CommentHandler struct {
	comments CommentService
	log      *zap.Logger
}

func NewCommentHandler(comments CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{comments: comments, log: log}
}

func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.comments.ListComments(c.Request.Context(), c.Param("review_id"))
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "comments", comments)
}

// Create POST /api/reviews/:review_id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	// undecodable body == no input
	var in services.NewComment
	if err := c.ShouldBindJSON(&in); err != nil {
		in = services.NewComment{}
	}

	comment, err := h.comments.AddComment(c.Request.Context(), c.Param("review_id"), in)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	respond(c, http.StatusCreated, "comment", comment)
}
