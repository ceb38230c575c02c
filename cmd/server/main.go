package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ffc/club/api/internal/config"
	"github.com/ffc/club/api/internal/database"
	"github.com/ffc/club/api/internal/handler"
	"github.com/ffc/club/api/internal/jobs"
	"github.com/ffc/club/api/internal/middleware"
	"github.com/ffc/club/api/internal/repository"
	"github.com/ffc/club/api/internal/service"
	"github.com/ffc/club/api/pkg/jwt"
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

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: cfg.JWT.PrivateKeyPath,
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	trainingRepo := repository.NewTrainingRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, logger)
	dashboardService := service.NewDashboardService(playerRepo, matchRepo, newsRepo, trainingRepo, logger)
	scheduleService := service.NewScheduleService(matchRepo, trainingRepo)
	chatService := service.NewChatService(messageRepo, cfg.Chat.HistoryLimit, logger)
	adminService := service.NewAdminService(playerRepo, matchRepo, newsRepo, trainingRepo, userRepo)

	// Keep the message collection bounded
	chatRetention := jobs.NewChatRetention(chatService, time.Hour)
	chatRetention.Start()
	defer chatRetention.Stop()

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   100, // 100 requests per minute
		Window: time.Minute,
		Burst:  20, // Allow bursts up to 20
	})
	defer rateLimiter.Stop()

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db)
	authHandler := handler.NewAuthHandler(authService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, scheduleService)
	chatHandler := handler.NewChatHandler(chatService, cfg.Server.AllowedOrigins, logger)
	adminHandler := handler.NewAdminHandler(adminService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Auth endpoints (public)
	mux.HandleFunc("POST /v1/auth/login/player", authHandler.LoginPlayer)
	mux.HandleFunc("POST /v1/auth/login/admin", authHandler.LoginAdmin)

	// Auth endpoints (protected)
	authMiddleware := middleware.Auth(jwtService, authService)
	optionalAuthMiddleware := middleware.OptionalAuth(jwtService, authService)
	adminMiddleware := middleware.AdminAuth(jwtService, authService)
	mux.Handle("POST /v1/auth/logout", authMiddleware(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /v1/auth/me", authMiddleware(http.HandlerFunc(authHandler.Me)))

	// Read endpoints (public)
	mux.HandleFunc("GET /v1/dashboard", dashboardHandler.Dashboard)
	mux.HandleFunc("GET /v1/players", dashboardHandler.Players)
	mux.HandleFunc("GET /v1/schedule", dashboardHandler.Schedule)

	// Chat endpoints: reads are public, sending requires a session,
	// so the socket resolves whatever token the client presents
	mux.Handle("GET /v1/chat/ws", optionalAuthMiddleware(http.HandlerFunc(chatHandler.WS)))
	mux.Handle("GET /v1/chat/messages", optionalAuthMiddleware(http.HandlerFunc(chatHandler.Messages)))

	// Admin content endpoints - requires admin role
	mux.Handle("GET /v1/admin/{kind}", adminMiddleware(http.HandlerFunc(adminHandler.List)))
	mux.Handle("POST /v1/admin/{kind}", adminMiddleware(http.HandlerFunc(adminHandler.Create)))
	mux.Handle("GET /v1/admin/{kind}/{id}", adminMiddleware(http.HandlerFunc(adminHandler.Get)))
	mux.Handle("PUT /v1/admin/{kind}/{id}", adminMiddleware(http.HandlerFunc(adminHandler.Update)))
	mux.Handle("DELETE /v1/admin/{kind}/{id}", adminMiddleware(http.HandlerFunc(adminHandler.Delete)))

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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
