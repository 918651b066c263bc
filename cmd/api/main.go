package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeforge-backend/config"
	"codeforge-backend/internal/app"
	v1 "codeforge-backend/internal/delivery/http/v1"
	"codeforge-backend/internal/usecase"
	"codeforge-backend/pkg/logger"
)

// @title           CodeForge Contact API
// @version         1.0
// @description     Contact form backend for the CodeForge website.
// @host            localhost:3001
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup Logger
	log := logger.Init(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.Port).
		Str("environment", cfg.Environment).
		Str("mail_provider", cfg.Mail.Provider).
		Int("admin_recipients", len(cfg.AdminEmails)).
		Msg("starting contact backend")

	// 3. Setup UseCases
	contactUC, err := app.NewContactUsecase(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize contact service")
	}
	healthUC := usecase.NewHealthUsecase(cfg.Environment)

	// 4. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Config:    cfg,
		Log:       log,
	})

	// 5. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
}
