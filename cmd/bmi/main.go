package main

import (
	"database/sql"
	"os"

	"github.com/joho/godotenv"

	"github.com/yusufkecer/bmi-tracker/internal/cli"
	"github.com/yusufkecer/bmi-tracker/internal/config"
	"github.com/yusufkecer/bmi-tracker/internal/db"
	"github.com/yusufkecer/bmi-tracker/internal/logger"
	"github.com/yusufkecer/bmi-tracker/internal/repository"
	"github.com/yusufkecer/bmi-tracker/internal/service"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, "console")
	if envErr != nil {
		log.Debug().Err(envErr).Msg(".env not loaded")
	}

	var database *sql.DB
	open := func() (cli.Service, error) {
		conn, err := db.Connect(cfg, log)
		if err != nil {
			return nil, err
		}
		if err := db.RunMigrations(conn, log); err != nil {
			conn.Close()
			return nil, err
		}
		database = conn
		return service.NewBMIService(repository.NewRecordRepository(conn), log), nil
	}

	code := cli.Run(os.Args[1:], open, os.Stdout, os.Stderr)

	if database != nil {
		database.Close()
	}
	os.Exit(code)
}
