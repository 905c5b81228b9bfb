package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AsmaaWasel/Dashboard/apiclient"
	"github.com/AsmaaWasel/Dashboard/cache"
	"github.com/AsmaaWasel/Dashboard/dashboard"
	"github.com/AsmaaWasel/Dashboard/env"
	"github.com/AsmaaWasel/Dashboard/locale"
	"github.com/AsmaaWasel/Dashboard/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {

	config, err := env.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config failed:", err)
		os.Exit(1)
	}

	if err := logger.Init(config); err != nil {
		fmt.Fprintln(os.Stderr, "init logger failed:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(config); err != nil {
		logger.GetLogger().Fatal("Dashboard stopped", zap.Error(err))
	}
}

func run(config *env.Env) error {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := apiclient.New(config.Dashboard.APIBaseURL, config.Dashboard.APITimeout)
	if err != nil {
		return fmt.Errorf("create API client: %w", err)
	}

	var categoryCache *cache.CategoryCache
	if config.Redis.Addr != "" {

		redisClient, err := cache.Connect(ctx, config.Redis)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}

		categoryCache = cache.NewCategoryCache(redisClient, config.Redis.TTL)
		defer categoryCache.Close()
	} else {
		logger.GetLogger().Info("REDIS_ADDR is not set, category cache disabled")
	}

	translator, err := locale.NewTranslator()
	if err != nil {
		return fmt.Errorf("create translator: %w", err)
	}

	board, err := dashboard.New(client, translator, dashboard.Options{
		AdminUsername: config.Dashboard.AdminUsername,
		Locale:        locale.Parse(config.Dashboard.DefaultLocale),
		Cache:         categoryCache,
	})
	if err != nil {
		return fmt.Errorf("create dashboard: %w", err)
	}
	defer board.Close()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	g := gin.New()
	g.Use(gin.Recovery(), logger.GinMiddleware())

	board.Register(g.Group("dashboard"))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Dashboard.Port),
		Handler:           g,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {

		logger.GetLogger().Info("Dashboard starting",
			zap.Int("port", config.Dashboard.Port),
			zap.String("api", config.Dashboard.APIBaseURL),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.GetLogger().Info("Shutting down dashboard")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
