package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/msalem/visahub-api/internal/config"
	"github.com/msalem/visahub-api/internal/database"
	"github.com/msalem/visahub-api/internal/handlers"
	"github.com/msalem/visahub-api/internal/metrics"
	authmw "github.com/msalem/visahub-api/internal/middleware"
	"github.com/msalem/visahub-api/internal/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	if !cfg.IsProduction() {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)
	userService := services.NewUserService(db)
	tokenService := services.NewTokenService(db)
	visaTypeService := services.NewVisaTypeService(db)
	applicationService := services.NewApplicationService(db, visaTypeService)

	authHandler := handlers.NewAuthHandler(cfg, userService, tokenService, jwtService)
	userHandler := handlers.NewUserHandler(userService)
	visaTypeHandler := handlers.NewVisaTypeHandler(visaTypeService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, collector)

	// Submissions are capped per user; browsing is not.
	submitLimiter := authmw.NewRateLimiter(rate.Limit(10.0/60.0), 10)
	defer submitLimiter.Stop()

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(driftmw.Recovery())
	app.Use(driftmw.CORSWithConfig(driftmw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))
	app.Use(driftmw.BodyParser())
	app.Use(authmw.RequestLogger(logger))
	app.Use(authmw.Metrics(collector))

	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Get("/:provider/consent", authHandler.GetConsentURL)
	auth.Get("/:provider/callback", authHandler.Callback)
	auth.Post("/exchange", authHandler.ExchangeCode)
	auth.Post("/refresh", authHandler.RefreshToken)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", authHandler.Me)

	api.Get("/visa-types", visaTypeHandler.List)

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	protected := api.Group("")
	protected.Use(authmw.Auth(jwtService, collector))

	protected.Post("/auth/logout-all", authHandler.LogoutAll)

	protected.Get("/users/me", userHandler.GetMe)

	protected.Get("/applications", applicationHandler.List)
	protected.Get("/dashboard", applicationHandler.Dashboard)

	submissions := protected.Group("")
	submissions.Use(submitLimiter.Middleware())
	submissions.Post("/applications", applicationHandler.Create)

	go func() {
		addr := fmt.Sprintf(":%s", cfg.MetricsPort)
		logger.Info().Str("addr", addr).Msg("metrics server starting")
		if err := http.ListenAndServe(addr, metrics.Routes(registry)); err != nil {
			logger.Error().Err(err).Msg("metrics server failed")
		}
	}()

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		for range ticker.C {
			_ = tokenService.CleanupExpired(context.Background())
		}
	}()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		logger.Info().Str("addr", addr).Msg("server starting")
		if err := app.Run(addr); err != nil {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
}
