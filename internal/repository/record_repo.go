package repository

import (
	"database/sql"
	"fmt"

	"github.com/yusufkecer/bmi-tracker/internal/domain"
)

// RecordRepository is an append-only store of BMI observations.
type RecordRepository struct {
	db *sql.DB
}

func NewRecordRepository(db *sql.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) Append(rec *domain.BMIRecord) (int64, error) {
	result, err := r.db.Exec(
		`INSERT INTO bmi_records (username, weight_kg, height_m, bmi, category, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Username, rec.WeightKg, rec.HeightM, rec.BMI, string(rec.Category), rec.RecordedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to append record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read record id: %w", err)
	}
	return id, nil
}

// QueryByUser returns every record for username in insertion order.
func (r *RecordRepository) QueryByUser(username string) ([]domain.BMIRecord, error) {
	rows, err := r.db.Query(
		`SELECT id, username, weight_kg, height_m, bmi, category, recorded_at
		 FROM bmi_records
		 WHERE username = ?
		 ORDER BY id ASC`, username,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	records := []domain.BMIRecord{}
	for rows.Next() {
		var (
			rec      domain.BMIRecord
			category string
		)
		if err := rows.Scan(&rec.ID, &rec.Username, &rec.WeightKg, &rec.HeightM, &rec.BMI, &category, &rec.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		rec.Category = domain.Category(category)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return records, nil
}
