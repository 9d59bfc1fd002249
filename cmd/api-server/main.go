package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"cinehub/database"
	"cinehub/internal/config"
	"cinehub/internal/handler"
	"cinehub/internal/mailer"
	"cinehub/internal/middleware"
	"cinehub/internal/pexels"
	"cinehub/internal/repository"
	"cinehub/internal/service"
	"cinehub/internal/subtitles"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load config; a missing DATABASE_URL or JWT_SECRET halts startup
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	// Connect to the database
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	// Optional external clients. Absence degrades only the matching feature.
	var mailClient service.Mailer
	if cfg.MailEnabled() {
		mailClient = mailer.NewClient(cfg)
	} else {
		logger.Warn("SMTP not configured, password recovery disabled")
	}

	var pexelsClient service.PexelsAPI
	if cfg.PexelsEnabled() {
		pexelsClient = pexels.NewClient(cfg.PexelsAPIKey)
	} else {
		logger.Warn("PEXELS_API_KEY not set, media search and import disabled")
	}

	var transcriber *subtitles.Transcriber
	if cfg.TranscribeEnabled() {
		transcriber = subtitles.NewTranscriber(cfg.TranscribeAPIURL, cfg.TranscribeAPIKey)
	} else {
		logger.Warn("TRANSCRIBE_API_URL not set, subtitle generation disabled")
	}

	// Services
	authService := service.NewAuthService(userRepo, mailClient, cfg)
	userService := service.NewUserService(userRepo, movieRepo, favoriteRepo)
	movieService := service.NewMovieService(movieRepo, commentRepo)
	importService := service.NewImportService(pexelsClient, movieRepo)
	subtitleService := subtitles.NewService(cfg.CaptionsDir, transcriber)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	movieHandler := handler.NewMovieHandler(movieService)
	pexelsHandler := handler.NewPexelsHandler(importService)
	subtitleHandler := handler.NewSubtitleHandler(subtitleService, movieService)

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())

	// Static caption files under a dedicated prefix
	r.Static("/captions", cfg.CaptionsDir)

	r.GET("/check-conn", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	api := r.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/recover", authHandler.Recover)
		auth.POST("/reset", authHandler.Reset)
	}
	movieHandler.RegisterPublicRoutes(api)
	api.GET("/movies/:movie_id/subtitles", subtitleHandler.List)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		protected.GET("/auth/profile", authHandler.Profile)
		movieHandler.RegisterProtectedRoutes(protected)
		userHandler.RegisterRoutes(protected)
		pexelsHandler.RegisterRoutes(protected)
		protected.POST("/movies/:movie_id/subtitles", subtitleHandler.Generate)
	}

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// Serve in a goroutine so we can listen for shutdown signals
	go func() {
		logger.Info("server listening", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	logger.Info("server exited")
}
