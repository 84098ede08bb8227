package repository

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusufkecer/bmi-tracker/internal/domain"
)

var recordColumns = []string{"id", "username", "weight_kg", "height_m", "bmi", "category", "recorded_at"}

func newMockRepo(t *testing.T) (*RecordRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRecordRepository(db), mock
}

func TestAppend(t *testing.T) {
	repo, mock := newMockRepo(t)
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	rec := &domain.BMIRecord{
		Username:   "alice",
		WeightKg:   70,
		HeightM:    1.75,
		BMI:        22.86,
		Category:   domain.Normal,
		RecordedAt: at,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bmi_records")).
		WithArgs("alice", 70.0, 1.75, 22.86, "Normal", at).
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := repo.Append(rec)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bmi_records")).
		WillReturnError(errors.New("disk full"))

	_, err := repo.Append(&domain.BMIRecord{Username: "bob"})
	assert.ErrorContains(t, err, "failed to append record")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryByUser(t *testing.T) {
	repo, mock := newMockRepo(t)
	first := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	second := first.Add(24 * time.Hour)

	rows := sqlmock.NewRows(recordColumns).
		AddRow(1, "alice", 70.0, 1.75, 22.86, "Normal", first).
		AddRow(4, "alice", 80.0, 1.75, 26.12, "Overweight", second)
	mock.ExpectQuery(regexp.QuoteMeta("FROM bmi_records")).
		WithArgs("alice").
		WillReturnRows(rows)

	records, err := repo.QueryByUser("alice")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(1), records[0].ID)
	assert.Equal(t, domain.Overweight, records[1].Category)
	assert.Equal(t, second, records[1].RecordedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryByUserEmpty(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM bmi_records")).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(recordColumns))

	records, err := repo.QueryByUser("nobody")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestQueryByUserError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM bmi_records")).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.QueryByUser("alice")
	assert.ErrorContains(t, err, "failed to query records")
}
