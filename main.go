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

	"github.com/AsmaaWasel/Dashboard/apis"
	categoriesAPI "github.com/AsmaaWasel/Dashboard/apis/categories"
	plansAPI "github.com/AsmaaWasel/Dashboard/apis/plans"
	usersAPI "github.com/AsmaaWasel/Dashboard/apis/users"
	"github.com/AsmaaWasel/Dashboard/auth"
	"github.com/AsmaaWasel/Dashboard/env"
	"github.com/AsmaaWasel/Dashboard/locale"
	"github.com/AsmaaWasel/Dashboard/logger"
	"github.com/AsmaaWasel/Dashboard/models/categories"
	"github.com/AsmaaWasel/Dashboard/models/plans"
	"github.com/AsmaaWasel/Dashboard/models/services"
	"github.com/AsmaaWasel/Dashboard/models/users"
	"github.com/AsmaaWasel/Dashboard/mongodb"
	"github.com/AsmaaWasel/Dashboard/objects"
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
		logger.GetLogger().Fatal("Admin API stopped", zap.Error(err))
	}
}

func run(config *env.Env) error {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := mongodb.InitConnection(config.MongoDB.URI, config.MongoDB.DB)
	if err != nil {
		return fmt.Errorf("create MongoDB connection: %w", err)
	}
	defer conn.Disconnect()

	categoriesModel, err := categories.NewCategoriesModel(ctx, conn)
	if err != nil {
		return fmt.Errorf("create categories model: %w", err)
	}

	servicesModel, err := services.NewServicesModel(ctx, conn)
	if err != nil {
		return fmt.Errorf("create services model: %w", err)
	}

	plansModel, err := plans.NewPlansModel(ctx, conn)
	if err != nil {
		return fmt.Errorf("create payment plans model: %w", err)
	}

	usersModel, err := users.NewUsersModel(ctx, conn)
	if err != nil {
		return fmt.Errorf("create users model: %w", err)
	}

	translator, err := locale.NewTranslator()
	if err != nil {
		return fmt.Errorf("create translator: %w", err)
	}

	tokens := auth.NewTokenService(config.JWT.Secret, config.JWT.Expiration)
	authService := auth.NewService(usersModel, tokens)

	if config.Seed.Enabled() {
		err := authService.EnsureUser(ctx, config.Dashboard.AdminUsername, config.Seed.Email, config.Seed.Password)
		if err != nil {
			return fmt.Errorf("seed admin user: %w", err)
		}
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	g := gin.New()
	g.Use(gin.Recovery(), logger.GinMiddleware())

	group := g.Group("api/auth")

	newUsersAPI := usersAPI.NewUsersAPI(authService, translator)
	newUsersAPI.RegisterPublic(group)

	protected := group.Group("")
	protected.Use(apis.RequireAuth(tokens))

	newUsersAPI.Register(protected)
	categoriesAPI.NewCategoriesAPI(categoriesModel, servicesModel, translator).Register(protected)
	apis.RegisterCrudAPI[objects.PaymentPlan](plansAPI.NewPlansAPI(plansModel, translator), protected.Group("payment-plans"))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           g,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {

		logger.GetLogger().Info("Admin API starting", zap.Int("port", config.Server.Port))

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

	logger.GetLogger().Info("Shutting down admin API")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
