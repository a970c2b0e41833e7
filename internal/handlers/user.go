package handlers

import (
	"context"
	"net/http"

	"gamereviews/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

type UserHandler struct {
	users UserLister
	log   *zap.Logger
}

func NewUserHandler(users UserLister, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "users", users)
}
