package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

type migration struct {
	version string
	sql     string
}

var migrations = []migration{
	{
		version: "000_create_bmi_records",
		sql: `
			CREATE TABLE IF NOT EXISTS bmi_records (
				id          BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
				username    VARCHAR(255) NOT NULL,
				weight_kg   DOUBLE NOT NULL,
				height_m    DOUBLE NOT NULL,
				bmi         DOUBLE NOT NULL,
				category    VARCHAR(20) NOT NULL,
				recorded_at DATETIME NOT NULL
			)`,
	},
	{
		version: "001_index_bmi_records_username",
		sql:     `CREATE INDEX idx_bmi_records_username ON bmi_records (username, id)`,
	},
}

func RunMigrations(db *sql.DB, log zerolog.Logger) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    VARCHAR(255) PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		applied, err := isMigrationApplied(db, m.version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		if err := executeMigration(db, m); err != nil {
			return err
		}

		log.Info().Str("version", m.version).Msg("applied migration")
	}

	return nil
}

func isMigrationApplied(db *sql.DB, version string) (bool, error) {
	var count int
	err := db.QueryRow(
		"SELECT COUNT(*) FROM schema_migrations WHERE version = ?",
		version,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check migration %s: %w", version, err)
	}
	return count > 0, nil
}

func executeMigration(db *sql.DB, m migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s: %w", m.version, err)
	}

	for _, stmt := range strings.Split(m.sql, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.Exec(stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to execute migration %s: %w", m.version, err)
		}
	}

	if _, err := tx.Exec(
		"INSERT INTO schema_migrations (version) VALUES (?)",
		m.version,
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %s: %w", m.version, err)
	}

	return tx.Commit()
}
