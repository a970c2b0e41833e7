package handlers

import (
	"context"
	"net/http"

	"gamereviews/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryLister interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type CategoryHandler struct {
	categories CategoryLister
	log        *zap.Logger
}

func NewCategoryHandler(categories CategoryLister, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{categories: categories, log: log}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.ListCategories(c.Request.Context())
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "categories", categories)
}
