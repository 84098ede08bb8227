package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yusufkecer/bmi-tracker/internal/bmi"
	"github.com/yusufkecer/bmi-tracker/internal/domain"
)

// RecordStore persists BMI observations. Records are never updated or removed.
type RecordStore interface {
	Append(rec *domain.BMIRecord) (int64, error)
	QueryByUser(username string) ([]domain.BMIRecord, error)
}

type BMIService struct {
	store RecordStore
	log   zerolog.Logger
	now   func() time.Time
}

func NewBMIService(store RecordStore, log zerolog.Logger) *BMIService {
	return &BMIService{
		store: store,
		log:   log.With().Str("component", "bmi_service").Logger(),
		now:   time.Now,
	}
}

// WithClock replaces the time source used to stamp new records.
func (s *BMIService) WithClock(now func() time.Time) *BMIService {
	s.now = now
	return s
}

// Calculate parses the raw inputs, computes the BMI and appends the result.
// Nothing is stored when any step fails.
func (s *BMIService) Calculate(username, weightText, heightText string) (*domain.BMIRecord, error) {
	weight, err := bmi.ParseMeasurement("weight", weightText)
	if err != nil {
		return nil, err
	}
	heightCm, err := bmi.ParseMeasurement("height", heightText)
	if err != nil {
		return nil, err
	}

	value, category, err := bmi.Compute(weight, heightCm)
	if err != nil {
		return nil, err
	}

	rec := &domain.BMIRecord{
		Username:   username,
		WeightKg:   weight,
		HeightM:    heightCm / 100,
		BMI:        value,
		Category:   category,
		RecordedAt: s.now().UTC().Truncate(time.Second),
	}

	id, err := s.store.Append(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to save bmi record: %w", err)
	}
	rec.ID = id

	s.log.Info().
		Int64("id", id).
		Str("username", username).
		Float64("bmi", value).
		Str("category", string(category)).
		Msg("bmi record saved")
	return rec, nil
}

func (s *BMIService) History(username string) ([]domain.BMIRecord, error) {
	if strings.TrimSpace(username) == "" {
		return nil, domain.ErrEmptyUsername
	}

	records, err := s.store.QueryByUser(username)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	if records == nil {
		records = []domain.BMIRecord{}
	}
	return records, nil
}

// Trend returns the user's BMI series ordered by timestamp.
func (s *BMIService) Trend(username string) ([]domain.TrendPoint, error) {
	records, err := s.History(username)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.ErrNoData
	}

	points := make([]domain.TrendPoint, len(records))
	for i, rec := range records {
		points[i] = domain.TrendPoint{Timestamp: rec.RecordedAt, BMI: rec.BMI}
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Timestamp.Before(points[j].Timestamp)
	})
	return points, nil
}
