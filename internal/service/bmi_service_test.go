package service

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yusufkecer/bmi-tracker/internal/domain"
)

type MockRecordStore struct {
	mock.Mock
}

func (m *MockRecordStore) Append(rec *domain.BMIRecord) (int64, error) {
	args := m.Called(rec)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecordStore) QueryByUser(username string) ([]domain.BMIRecord, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BMIRecord), args.Error(1)
}

// memoryStore is a minimal in-process RecordStore.
type memoryStore struct {
	records []domain.BMIRecord
}

func (s *memoryStore) Append(rec *domain.BMIRecord) (int64, error) {
	id := int64(len(s.records) + 1)
	stored := *rec
	stored.ID = id
	s.records = append(s.records, stored)
	return id, nil
}

func (s *memoryStore) QueryByUser(username string) ([]domain.BMIRecord, error) {
	var out []domain.BMIRecord
	for _, r := range s.records {
		if r.Username == username {
			out = append(out, r)
		}
	}
	return out, nil
}

var fixedNow = time.Date(2024, 5, 10, 8, 15, 30, 999, time.UTC)

func newTestService(store RecordStore) *BMIService {
	return NewBMIService(store, zerolog.Nop()).WithClock(func() time.Time { return fixedNow })
}

func TestCalculate(t *testing.T) {
	store := new(MockRecordStore)
	store.On("Append", mock.MatchedBy(func(rec *domain.BMIRecord) bool {
		return rec.Username == "alice" &&
			rec.WeightKg == 70 &&
			rec.HeightM == 1.75 &&
			rec.BMI == 22.86 &&
			rec.Category == domain.Normal &&
			rec.RecordedAt.Equal(fixedNow.Truncate(time.Second))
	})).Return(int64(3), nil)

	rec, err := newTestService(store).Calculate("alice", "70", "175")
	require.NoError(t, err)
	assert.Equal(t, int64(3), rec.ID)
	assert.Equal(t, 22.86, rec.BMI)
	store.AssertExpectations(t)
}

func TestCalculateInvalidInputDoesNotAppend(t *testing.T) {
	tests := []struct {
		name   string
		weight string
		height string
	}{
		{name: "non numeric weight", weight: "seventy", height: "175"},
		{name: "non numeric height", weight: "70", height: "tall"},
		{name: "zero height", weight: "70", height: "0"},
		{name: "empty weight", weight: "", height: "175"},
		{name: "negative weight", weight: "-70", height: "175"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockRecordStore)

			rec, err := newTestService(store).Calculate("alice", tt.weight, tt.height)
			assert.Nil(t, rec)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			store.AssertNotCalled(t, "Append", mock.Anything)
		})
	}
}

func TestCalculateStoreFailure(t *testing.T) {
	store := new(MockRecordStore)
	store.On("Append", mock.Anything).Return(int64(0), errors.New("db down"))

	_, err := newTestService(store).Calculate("alice", "70", "175")
	assert.ErrorContains(t, err, "failed to save bmi record")
	assert.NotErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAppendThenHistory(t *testing.T) {
	store := &memoryStore{}
	svc := newTestService(store)

	_, err := svc.Calculate("bob", "90", "180")
	require.NoError(t, err)
	saved, err := svc.Calculate("alice", "55", "160")
	require.NoError(t, err)

	history, err := svc.History("alice")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, *saved, history[0])
}

func TestHistory(t *testing.T) {
	t.Run("empty username", func(t *testing.T) {
		store := new(MockRecordStore)
		_, err := newTestService(store).History("   ")
		assert.ErrorIs(t, err, domain.ErrEmptyUsername)
		store.AssertNotCalled(t, "QueryByUser", mock.Anything)
	})

	t.Run("no records", func(t *testing.T) {
		store := new(MockRecordStore)
		store.On("QueryByUser", "carol").Return(nil, nil)

		records, err := newTestService(store).History("carol")
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("store error", func(t *testing.T) {
		store := new(MockRecordStore)
		store.On("QueryByUser", "carol").Return(nil, errors.New("timeout"))

		_, err := newTestService(store).History("carol")
		assert.ErrorContains(t, err, "failed to load history")
	})
}

func TestTrend(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 12, 0, 0, 0, time.UTC) }

	t.Run("sorted by timestamp", func(t *testing.T) {
		store := new(MockRecordStore)
		store.On("QueryByUser", "dave").Return([]domain.BMIRecord{
			{ID: 1, BMI: 24.1, RecordedAt: day(5)},
			{ID: 2, BMI: 23.9, RecordedAt: day(2)},
			{ID: 3, BMI: 23.5, RecordedAt: day(9)},
			{ID: 4, BMI: 23.0, RecordedAt: day(2)},
		}, nil)

		points, err := newTestService(store).Trend("dave")
		require.NoError(t, err)
		assert.Equal(t, []domain.TrendPoint{
			{Timestamp: day(2), BMI: 23.9},
			{Timestamp: day(2), BMI: 23.0},
			{Timestamp: day(5), BMI: 24.1},
			{Timestamp: day(9), BMI: 23.5},
		}, points)
	})

	t.Run("no data", func(t *testing.T) {
		store := new(MockRecordStore)
		store.On("QueryByUser", "erin").Return([]domain.BMIRecord{}, nil)

		_, err := newTestService(store).Trend("erin")
		assert.ErrorIs(t, err, domain.ErrNoData)
	})

	t.Run("empty username", func(t *testing.T) {
		_, err := newTestService(new(MockRecordStore)).Trend("")
		assert.ErrorIs(t, err, domain.ErrEmptyUsername)
	})
}
