package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	mid "github.com/corpgraph/backend/internal/server/middleware"
	"github.com/corpgraph/backend/internal/util"
	"github.com/corpgraph/backend/pkg/logger"
	"github.com/corpgraph/backend/pkg/network"
	"github.com/corpgraph/backend/pkg/registry"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	apiKey := util.GetEnv("REGISTRY_API_KEY")
	if apiKey == "" {
		logger.Fatal("REGISTRY_API_KEY is required")
	}

	regClient, err := registry.NewClient(registry.NewClientParams{
		APIKey:             apiKey,
		Sandbox:            util.GetEnvBool("REGISTRY_SANDBOX", false),
		RequestTimeout:     time.Duration(util.GetEnvInt("REGISTRY_TIMEOUT_S", 10)) * time.Second,
		MinRequestInterval: time.Duration(util.GetEnvInt("REGISTRY_RATE_LIMIT_MS", 100)) * time.Millisecond,
		MaxRetries:         util.GetEnvInt("REGISTRY_MAX_RETRIES", 2),
	})
	if err != nil {
		logger.Fatal("Failed to create registry client", "err", err)
	}

	builder := network.NewBuilder(network.NewBuilderParams{
		Registry:        regClient,
		MaxCompanies:    util.GetEnvInt("NETWORK_MAX_COMPANIES", 10),
		ParallelFetches: util.GetEnvInt("NETWORK_PARALLEL_FETCHES", 3),
	})

	var key *keyfunc.Keyfunc
	if jwksURL := util.GetEnv("AUTH_JWKS_URL"); jwksURL != "" {
		k, err := keyfunc.NewDefault([]string{jwksURL})
		if err != nil {
			logger.Fatal("Failed to load jwks keys", "err", err)
		}
		key = &k
	}

	app := &mid.App{
		Registry:            regClient,
		Builder:             builder,
		Key:                 key,
		MasterAPIKey:        util.GetEnv("MASTER_API_KEY"),
		SearchMaxResults:    util.GetEnvInt("SEARCH_MAX_RESULTS", 20),
		NetworkMaxCompanies: util.GetEnvInt("NETWORK_MAX_COMPANIES", 10),
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	RegisterRoutes(e)

	go func() {
		port := util.GetEnvString("PORT", "8080")
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}
