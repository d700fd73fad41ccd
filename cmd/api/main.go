package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-screening-backend/config"
	v1 "go-screening-backend/internal/delivery/http/v1"
	"go-screening-backend/internal/repository/postgres"
	"go-screening-backend/internal/usecase"
	"go-screening-backend/pkg/database"
	"go-screening-backend/pkg/email"
	"go-screening-backend/pkg/embedding"
	"go-screening-backend/pkg/logger"
	"go-screening-backend/pkg/redis"
	"go-screening-backend/pkg/summarizer"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting screening backend", "port", cfg.Port)

	ctx := context.Background()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.EnsureSchema(ctx, dbPool); err != nil {
		logger.Log.Error("Failed to ensure database schema", "error", err)
		os.Exit(1)
	}

	// 4. Setup Embedding Cache (optional)
	var embedCache embedding.Cache
	if cfg.UpstashRedisURL != "" {
		redisClient, err := redis.NewClient(redis.Config{
			URL:      cfg.UpstashRedisURL,
			Password: cfg.UpstashRedisPassword,
		})
		if err != nil {
			logger.Log.Warn("Redis unavailable, embedding cache disabled", "error", err)
		} else {
			defer redisClient.Close()
			embedCache = embedding.NewRedisCache(redisClient, 24*time.Hour)
		}
	}

	// 5. Setup Gemini Services
	embedTimeout := time.Duration(cfg.EmbeddingTimeoutSeconds) * time.Second
	embedder, err := embedding.NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiEmbedModel, embedTimeout, embedCache)
	if err != nil {
		logger.Log.Error("Failed to initialize embedding service", "error", err)
		os.Exit(1)
	}
	jobSummarizer, err := summarizer.NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiGenModel)
	if err != nil {
		logger.Log.Error("Failed to initialize summarizer", "error", err)
		os.Exit(1)
	}

	// 6. Setup Repositories
	jobRepo := postgres.NewJobRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	matchRepo := postgres.NewMatchRepository(dbPool)

	// 7. Setup Email Service
	inviteService := email.NewInviteService(cfg)
	if !inviteService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - interview invites will be unavailable")
	}

	// 8. Setup UseCases
	jobUC := usecase.NewJobUsecase(jobRepo, jobSummarizer)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo)
	matchingUC := usecase.NewMatchingUsecase(jobRepo, candidateRepo, matchRepo, embedder, cfg.MatchThreshold, cfg.DashboardTopN)
	schedulerUC := usecase.NewSchedulerUsecase(jobRepo, matchRepo, inviteService, cfg.MatchThreshold)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		JobUC:       jobUC,
		CandidateUC: candidateUC,
		MatchingUC:  matchingUC,
		SchedulerUC: schedulerUC,
		Config:      cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
