package main

import (
	"github.com/joho/godotenv"

	"fyne.io/fyne/v2/app"

	"github.com/yusufkecer/bmi-tracker/internal/config"
	"github.com/yusufkecer/bmi-tracker/internal/db"
	"github.com/yusufkecer/bmi-tracker/internal/gui"
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

	svc := service.NewBMIService(repository.NewRecordRepository(database), log)

	a := app.NewWithID("com.yusufkecer.bmi-tracker")
	view := gui.NewView(a, svc, log)
	view.Window().ShowAndRun()
}
