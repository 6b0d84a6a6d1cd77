package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"futuro-do-trabalho-api/config"
	v1 "futuro-do-trabalho-api/internal/delivery/http/v1"
	"futuro-do-trabalho-api/internal/repository/postgres"
	"futuro-do-trabalho-api/internal/usecase"
	"futuro-do-trabalho-api/pkg/database"
	"futuro-do-trabalho-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting futuro-do-trabalho API", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.EnsureSchema(context.Background(), dbPool); err != nil {
		logger.Log.Error("Failed to bootstrap schema", "error", err)
		os.Exit(1)
	}

	// 4. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)

	// 5. Setup UseCases
	validate := validator.New()
	userUC := usecase.NewUserUsecase(userRepo, validate)
	jobUC := usecase.NewJobUsecase(jobRepo, validate)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, jobRepo, validate)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		UserUC:      userUC,
		JobUC:       jobUC,
		CandidateUC: candidateUC,
	})

	// 7. Start Server
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
