package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"go-jobsclub-backend/config"
	_ "go-jobsclub-backend/docs" // swagger spec registration
	v1 "go-jobsclub-backend/internal/delivery/http/v1"
	"go-jobsclub-backend/internal/repository/postgres"
	"go-jobsclub-backend/internal/usecase"
	"go-jobsclub-backend/pkg/auth"
	"go-jobsclub-backend/pkg/database"
	"go-jobsclub-backend/pkg/email"
	"go-jobsclub-backend/pkg/llm"
	"go-jobsclub-backend/pkg/logger"
	"go-jobsclub-backend/pkg/redis"
)

// @title           JobsClub Backend API
// @version         1.0
// @description     Job board backend with candidate-to-job matching, skill testing and AI-assisted content.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Init()
	slog.Info("starting jobsclub backend", "port", cfg.Port)

	ctx := context.Background()
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.RedisURL != "" {
		if err := redis.Initialize(cfg.RedisURL); err != nil {
			slog.Warn("redis unavailable, rate limiting falls back to in-memory", "error", err)
		} else {
			defer redis.Close()
		}
	}

	candidateRepo := postgres.NewCandidateRepository(dbPool)
	employerRepo := postgres.NewEmployerRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	skillTestRepo := postgres.NewSkillTestRepository(dbPool)
	jobTestRepo := postgres.NewJobTestRepository(dbPool)
	candidateTestRepo := postgres.NewCandidateTestRepository(dbPool)
	shortlistRepo := postgres.NewShortlistRepository(dbPool)
	blogRepo := postgres.NewBlogRepository(dbPool)

	mailer := email.NewService(email.Config{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		Username:  cfg.SMTPUsername,
		Password:  cfg.SMTPPassword,
		FromEmail: cfg.SMTPFromEmail,
	})
	if !mailer.IsConfigured() {
		slog.Warn("email service not configured, outreach mail will be unavailable")
	}

	generator := llm.NewClient(llm.Config{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
		Timeout: time.Duration(cfg.LLMTimeoutSec) * time.Second,
	})

	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.SessionTTLH)*time.Hour)
	validate := validator.New()

	authUC := usecase.NewAuthUsecase(candidateRepo, employerRepo, tokens, validate, usecase.AdminCredentials{
		Email:        cfg.AdminEmail,
		PasswordHash: cfg.AdminPasswordHash,
	})
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, validate)
	jobUC := usecase.NewJobUsecase(jobRepo, employerRepo)
	matchingUC := usecase.NewMatchingUsecase(candidateRepo, jobRepo, skillTestRepo, candidateTestRepo)
	testUC := usecase.NewTestUsecase(jobRepo, jobTestRepo, candidateTestRepo, skillTestRepo)
	shortlistUC := usecase.NewShortlistUsecase(shortlistRepo, candidateRepo, jobRepo)
	blogUC := usecase.NewBlogUsecase(blogRepo)
	generationUC := usecase.NewGenerationUsecase(generator, candidateRepo, jobRepo, employerRepo)
	adminUC := usecase.NewAdminUsecase(jobRepo, blogRepo)
	outreachUC := usecase.NewOutreachUsecase(mailer)

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		CandidateUC:  candidateUC,
		JobUC:        jobUC,
		MatchingUC:   matchingUC,
		TestUC:       testUC,
		ShortlistUC:  shortlistUC,
		BlogUC:       blogUC,
		GenerationUC: generationUC,
		AdminUC:      adminUC,
		OutreachUC:   outreachUC,
		Tokens:       tokens,
		Config:       cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}
	slog.Info("server exited")
}
