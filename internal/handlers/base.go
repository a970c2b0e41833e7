package handlers

import (
	"net/http"

	"gamereviews/internal/apperr"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func respond(c *gin.Context, code int, key string, data any) {
	c.JSON(code, gin.H{key: data})
}

// RespondError writes the classified {msg}. 500 causes are logged, never sent.
func RespondError(c *gin.Context, log *zap.Logger, err error) {
	status, msg := apperr.Classify(err)

	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path))
	} else {
		log.Debug("request rejected",
			zap.Int("status", status),
			zap.String("msg", msg),
			zap.NamedError("cause", err))
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"msg": msg})
}

func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"msg": apperr.MsgRouteNotFound})
}

func NoMethod(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"msg": apperr.MsgMethodNotAllowed})
}

// Recovery turns a panic into the same 500 body every other failure gets.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": apperr.MsgServerError})
	})
}
