package handlers

import (
	"context"
	"net/http"
	"time"

	"gamereviews/internal/apperr"
	"gamereviews/internal/endpoints"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type APIHandler struct {
	doc   endpoints.Document
	store Pinger
	log   *zap.Logger
}

func NewAPIHandler(doc endpoints.Document, store Pinger, log *zap.Logger) *APIHandler {
	return &APIHandler{doc: doc, store: store, log: log}
}

// GET /api
func (h *APIHandler) Endpoints(c *gin.Context) {
	respond(c, http.StatusOK, "endpoints", h.doc)
}

// Health reports 503 when the store cannot be pinged.
func (h *APIHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.log.Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"msg": apperr.MsgDatabaseUnavailable})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
