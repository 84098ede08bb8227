package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/yusufkecer/bmi-tracker/internal/config"
	"github.com/yusufkecer/bmi-tracker/internal/db"
	"github.com/yusufkecer/bmi-tracker/internal/handler"
	"github.com/yusufkecer/bmi-tracker/internal/logger"
	"github.com/yusufkecer/bmi-tracker/internal/repository"
	"github.com/yusufkecer/bmi-tracker/internal/service"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		log.Debug().Err(envErr).Msg(".env not loaded")
	}

	database, err := db.Connect(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer database.Close()

	if err := db.RunMigrations(database, log); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	recordRepo := repository.NewRecordRepository(database)
	bmiService := service.NewBMIService(recordRepo, log)
	bmiHandler := handler.NewBMIHandler(bmiService, log)

	r := handler.NewRouter(bmiHandler, handler.RouterConfig{
		APIKey:         cfg.APIKey,
		AllowedOrigins: cfg.AllowedOrigins,
		CalcRateLimit:  cfg.CalcRateLimit,
	}, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
