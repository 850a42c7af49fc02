package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/config"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/database"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/handler"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/logger"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/repository"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/router"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/service"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/validator"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting CGPA API")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	subjectRepo := repository.NewSubjectRepository(pool)
	regulationRepo := repository.NewRegulationRepository(pool)
	submissionRepo := repository.NewSubmissionRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService, err := service.NewAuthService(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid admin credential configuration")
	}
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		log.Warn().Msg("Neither ADMIN_PASSWORD nor ADMIN_PASSWORD_HASH is set; admin login is disabled")
	}
	regulationService := service.NewRegulationService(regulationRepo, rdb, cfg, log)
	subjectService := service.NewSubjectService(subjectRepo, regulationService, rdb, cfg, log)
	submissionService := service.NewSubmissionService(submissionRepo, rdb, log)
	calculationService := service.NewCalculationService(subjectService, submissionService, log)
	wizardService := service.NewWizardService(
		service.NewRedisWizardStore(rdb, cfg.WizardTTL),
		subjectService,
		regulationService,
	)
	dashboardService := service.NewDashboardService(dashboardRepo, submissionRepo)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:        handler.NewAuthHandler(authService, log),
		Subject:     handler.NewSubjectHandler(subjectService, log),
		Regulation:  handler.NewRegulationHandler(regulationService, log),
		Calculation: handler.NewCalculationHandler(calculationService, log),
		Submission:  handler.NewSubmissionHandler(submissionService, log),
		Feed:        handler.NewFeedHandler(submissionService, cfg.AllowedOrigins, log),
		Wizard:      handler.NewWizardHandler(wizardService, log),
		Dashboard:   handler.NewDashboardHandler(dashboardService, log),
		System:      handler.NewSystemHandler(pool, rdb, log),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())
	var workers sync.WaitGroup

	submissionWorker := worker.NewSubmissionWorker(submissionRepo, rdb, log)
	workers.Add(1)
	go func() {
		defer workers.Done()
		submissionWorker.Start(workerCtx)
	}()

	// ─── Prewarm Regulation Cache ─────────────────────────────────────
	// Every calculation resolves a batch against the active registry.
	if _, err := regulationService.ListActive(ctx); err != nil {
		log.Warn().Err(err).Msg("Regulation cache prewarm failed")
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(ctx, authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the submission worker and wait for its final flush.
	workerCancel()
	workers.Wait()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
