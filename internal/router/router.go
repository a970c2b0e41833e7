package router

import (
	"net/http"

	"gamereviews/internal/handlers"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers groups everything the route table dispatches to.
type Handlers struct {
	API        *handlers.APIHandler
	Categories *handlers.CategoryHandler
	Users      *handlers.UserHandler
	Reviews    *handlers.ReviewHandler
	Comments   *handlers.CommentHandler

	// Metrics is mounted at /metrics when non-nil.
	Metrics http.Handler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.HandleMethodNotAllowed = true
	r.NoRoute(handlers.NoRoute)
	r.NoMethod(handlers.NoMethod)

	r.GET("/healthz", h.API.Health) // store reachability
	if h.Metrics != nil {
		r.GET("/metrics", gin.WrapH(h.Metrics))
	}

	api := r.Group("/api")
	{
		api.GET("", h.API.Endpoints) // endpoint docs
		api.GET("/categories", h.Categories.List)
		api.GET("/users", h.Users.List)

		// reviews
		api.GET("/reviews", h.Reviews.List)
		api.GET("/reviews/:review_id", h.Reviews.Get)
		api.PATCH("/reviews/:review_id", h.Reviews.PatchVotes)

		// comments
		api.GET("/reviews/:review_id/comments", h.Comments.List)
		api.POST("/reviews/:review_id/comments", h.Comments.Create)
	}
}

// NewEngine builds a gin engine with mw applied ahead of panic recovery and
// the route table.
func NewEngine(log *zap.Logger, h Handlers, mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.Use(handlers.Recovery(log))
	RegisterRoutes(r, h)
	return r
}
