package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UtkarshSachan777/Glow-AI/internal/config"
	"github.com/UtkarshSachan777/Glow-AI/internal/database"
	"github.com/UtkarshSachan777/Glow-AI/internal/handler"
	"github.com/UtkarshSachan777/Glow-AI/internal/jobs"
	"github.com/UtkarshSachan777/Glow-AI/internal/middleware"
	"github.com/UtkarshSachan777/Glow-AI/internal/repository"
	"github.com/UtkarshSachan777/Glow-AI/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	productRepo := repository.NewProductRepository(db)
	profileRepo, err := repository.NewProfileRepository(db)
	if err != nil {
		slog.Error("failed to initialize profile repository", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Seed the launch catalog on first start
	if cfg.Engine.SeedCatalog {
		if err := service.SeedCatalog(ctx, productRepo); err != nil {
			slog.Error("failed to seed catalog", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Initialize services
	authService := service.NewAuthService(service.AuthServiceConfig{
		Users:      userRepo,
		Sessions:   sessionRepo,
		SessionTTL: cfg.Auth.SessionTTL,
	})

	personalizationService := service.NewPersonalizationService(service.PersonalizationServiceConfig{
		Catalog:  productRepo,
		Profiles: profileRepo,
	})

	catalogService := service.NewCatalogService(service.CatalogServiceConfig{
		Products: productRepo,
		Lookup:   productRepo,
	})

	wizardService := service.NewWizardService(service.WizardServiceConfig{
		Personalization: personalizationService,
		AnalysisDelay:   cfg.Engine.AnalysisDelay,
	})

	// Start background jobs
	sessionCleanup := jobs.NewSessionCleanup(sessionRepo, time.Hour)
	sessionCleanup.Start()
	defer sessionCleanup.Stop()

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   cfg.Engine.RateLimit,
		Window: time.Minute,
	})
	defer rateLimiter.Stop()

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db)
	authHandler := handler.NewAuthHandler(authService)
	wizardHandler := handler.NewWizardHandler(wizardService)
	analysisHandler := handler.NewAnalysisHandler(personalizationService)
	profileHandler := handler.NewProfileHandler(personalizationService)
	productsHandler := handler.NewProductsHandler(catalogService, personalizationService)

	// Set up routes
	mux := http.NewServeMux()

	authRequired := middleware.Auth(authService)
	authOptional := middleware.OptionalAuth(authService)

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Public auth endpoints
	mux.HandleFunc("POST /v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /v1/sessions/guest", authHandler.Guest)

	// Wizard endpoints - the session binds the eventual profile
	mux.HandleFunc("GET /v1/wizard/steps", wizardHandler.Steps)
	mux.Handle("POST /v1/wizard", authRequired(http.HandlerFunc(wizardHandler.Start)))
	mux.Handle("GET /v1/wizard/{wizardId}", authRequired(http.HandlerFunc(wizardHandler.Get)))
	mux.Handle("POST /v1/wizard/{wizardId}/answer", authRequired(http.HandlerFunc(wizardHandler.Answer)))
	mux.Handle("POST /v1/wizard/{wizardId}/next", authRequired(http.HandlerFunc(wizardHandler.Next)))
	mux.Handle("POST /v1/wizard/{wizardId}/previous", authRequired(http.HandlerFunc(wizardHandler.Previous)))
	mux.Handle("GET /v1/wizard/{wizardId}/result", authRequired(http.HandlerFunc(wizardHandler.Result)))

	// One-shot analysis and profile endpoints
	mux.Handle("POST /v1/analysis", authRequired(http.HandlerFunc(analysisHandler.Analyze)))
	mux.Handle("GET /v1/profile", authRequired(http.HandlerFunc(profileHandler.Get)))

	// Catalog endpoints - anonymous browsing, scored when a session exists
	mux.Handle("GET /v1/products", authOptional(http.HandlerFunc(productsHandler.List)))
	mux.Handle("GET /v1/products/{productId}/match", authRequired(http.HandlerFunc(productsHandler.Match)))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
