// Package main is the entry point for the premium prediction HTTP server.
package main

import (
	"net/http"
	"time"

	"github.com/insurekart/premium-prediction-service/internal/config"
	"github.com/insurekart/premium-prediction-service/internal/features"
	"github.com/insurekart/premium-prediction-service/internal/inference"
	"github.com/insurekart/premium-prediction-service/internal/logger"
	"github.com/insurekart/premium-prediction-service/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info")
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(cfg.Logging.Level)

	// The classifier is loaded exactly once; serving without a model is
	// never allowed, so a load failure is fatal.
	classifier, err := inference.Load(cfg.Model.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Model.Path).Msg("failed to load classifier artifact")
	}
	log.Info().
		Str("path", cfg.Model.Path).
		Str("model_version", classifier.ModelVersion()).
		Strs("classes", classifier.Classes()).
		Msg("classifier artifact loaded")

	deps := &server.Dependencies{
		Config:    cfg,
		Predictor: inference.NewAdapter(classifier),
		TierTable: features.NewTierTable(),
		Logger:    log,
	}

	router := server.New(deps)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.RequestTimeout,
		WriteTimeout: cfg.Server.RequestTimeout,
		IdleTimeout:  120 * time.Second,
	}

	log.Info().Str("port", cfg.Server.Port).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server failed")
	}
}
