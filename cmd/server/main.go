package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"gamereviews/internal/config"
	"gamereviews/internal/db"
	"gamereviews/internal/endpoints"
	"gamereviews/internal/handlers"
	"gamereviews/internal/middleware"
	"gamereviews/internal/models"
	"gamereviews/internal/router"
	"gamereviews/internal/services"
	"gamereviews/internal/store"
	"gamereviews/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, envLoaded, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	if !envLoaded {
		logger.Info("No .env file found, reading config from environment")
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	gdb, err := db.Open(db.Options{
		DSN:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}()

	doc, err := endpoints.Load(cfg.EndpointsFile)
	if err != nil {
		return err
	}

	categoryCache, err := utils.NewCache[[]models.Category](16)
	if err != nil {
		return err
	}

	st := store.NewGormStore(gdb)

	// Handlers
	h := router.Handlers{
		API:        handlers.NewAPIHandler(doc, st, logger),
		Categories: handlers.NewCategoryHandler(services.NewCategoryService(st, categoryCache, cfg.CategoryCacheTTL), logger),
		Users:      handlers.NewUserHandler(services.NewUserService(st), logger),
		Reviews:    handlers.NewReviewHandler(services.NewReviewService(st), logger),
		Comments:   handlers.NewCommentHandler(services.NewCommentService(st), logger),
	}

	// Middleware
	gin.SetMode(cfg.GinMode)
	mw := []gin.HandlerFunc{
		middleware.RequestLogger(logger),
		middleware.CORS(cfg.CORSAllowOrigins),
	}
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		mw = append(mw, middleware.NewMetrics(reg).Handler())
		h.Metrics = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router.NewEngine(logger, h, mw...),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Game reviews server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}
