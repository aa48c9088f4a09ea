package main

import (
	"net/http"
	"os"
	"time"

	"pet-care-tracker/internal/platform/config"
	"pet-care-tracker/internal/platform/logger"
	"pet-care-tracker/internal/platform/timezone"
	"pet-care-tracker/internal/router"
)

// @title Pet Care Tracker API
// @version 1.0
// @description API de seguimiento de cuidados de mascotas: rutinas diarias, glucosa, humor y paseos.
// @BasePath /api
func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	clock, err := timezone.New(cfg.ReferenceTZ)
	if err != nil {
		log.Error("invalid reference timezone", map[string]any{"tz": cfg.ReferenceTZ, "err": err.Error()})
		os.Exit(1)
	}

	h := router.NewRouter(router.Options{
		DBDSN:      cfg.DBDSN,
		SQLitePath: cfg.SQLitePath,
		Clock:      clock,
		Logger:     log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": srv.Addr, "tz": cfg.ReferenceTZ})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
