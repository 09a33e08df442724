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

	"github.com/fitgate/fitgate/internal/api/handlers"
	"github.com/fitgate/fitgate/internal/api/middleware"
	"github.com/fitgate/fitgate/internal/api/router"
	"github.com/fitgate/fitgate/internal/audit"
	"github.com/fitgate/fitgate/internal/config"
	"github.com/fitgate/fitgate/internal/pkg/logger"
	"github.com/fitgate/fitgate/internal/pkg/validator"
	"github.com/fitgate/fitgate/internal/providers"
	"github.com/fitgate/fitgate/internal/repository/sqlite"
	"github.com/fitgate/fitgate/internal/services"
	"github.com/fitgate/fitgate/internal/worker"
)

// @title FitGate API
// @version 1.0
// @description Authentication, tiered feature access and plan generation for the FitGate fitness app
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	db, err := sqlite.New(cfg.Database)
	if err != nil {
		log.Fatal(fmt.Sprintf("Failed to open database: %v", err))
	}
	defer db.Close()

	trail := audit.NewTrail(audit.DefaultCapacity)
	val := validator.New()

	userRepo := sqlite.NewUserRepository(db)
	planRepo := sqlite.NewPlanRepository(db)

	userService := services.NewUserService(userRepo, log, trail, cfg.Auth.BCryptCost, cfg.Auth.GuestLifetime)

	var completer providers.Completer
	if cfg.Provider.OpenAIAPIKey != "" {
		completer = providers.NewOpenAI(cfg.Provider.OpenAIAPIKey, cfg.Provider.OpenAIModel)
	} else {
		log.Warn("OPENAI_API_KEY not set, plan generation uses templates")
	}
	planService := services.NewPlanService(planRepo, completer, cfg.Provider.OpenAIModel, log)
	coachService := services.NewCoachService(completer, cfg.Provider.OpenAIModel, log)

	authCfg := middleware.AuthConfig{
		JWTSecret:     cfg.Auth.JWTSecret,
		Users:         userService,
		LookupTimeout: cfg.Auth.LookupTimeout,
	}

	h := &router.Handlers{
		Health:    handlers.NewHealthHandler(db, log),
		Auth:      handlers.NewAuthHandler(userService, cfg, log, val),
		Profile:   handlers.NewProfileHandler(userService, log, val),
		Screening: handlers.NewScreeningHandler(userService, log, val),
		Plan:      handlers.NewPlanHandler(planService, log, val),
		Coach:     handlers.NewCoachHandler(coachService, log, val),
		Progress:  handlers.NewProgressHandler(planService, log),
		Library:   handlers.NewLibraryHandler(),
		Billing:   handlers.NewBillingHandler(userService, cfg, log, val),
		Policy:    handlers.NewPolicyHandler(),
		Admin:     handlers.NewAdminHandler(userService, trail, log),
	}

	sweeper := worker.NewSweeper(userRepo, log)
	sweeper.Start()
	defer sweeper.Stop()

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.New(cfg, log, authCfg, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info(fmt.Sprintf("Server listening on %s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(fmt.Sprintf("Server failed: %v", err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorWithErr(err, "Graceful shutdown failed")
	}
}
