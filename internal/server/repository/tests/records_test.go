package tests

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-bmi-tracker/internal/shared/errors"
)

func newRecordsRepo(t *testing.T) (*repository.RecordsRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return repository.NewRecordsRepository(db), mock
}

// Успех: в транзакции пишутся bmi_records и bmi_history с одной датой
func TestCreateMeasurement_Success(t *testing.T) {
	t.Parallel()
	repo, mock := newRecordsRepo(t)

	userID := uuid.New()
	recordID := uuid.New()
	createdAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO bmi_records`)).
		WithArgs(userID, 30, "male", 170.0, 65.0, 22.49).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(recordID, createdAt))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO bmi_history`)).
		WithArgs(userID, 22.49, createdAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, gotAt, err := repo.CreateMeasurement(context.Background(), userID, 30, "male", 170.0, 65.0, 22.49)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != recordID {
		t.Fatalf("expected id %s, got %s", recordID, id)
	}
	if !gotAt.Equal(createdAt) {
		t.Fatalf("expected created_at %v, got %v", createdAt, gotAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// FK violation — пользователя нет, ErrNotFound
func TestCreateMeasurement_UnknownUser(t *testing.T) {
	t.Parallel()
	repo, mock := newRecordsRepo(t)

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO bmi_records`)).
		WithArgs(userID, 30, "male", 170.0, 65.0, 22.49).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	_, _, err := repo.CreateMeasurement(context.Background(), userID, 30, "male", 170.0, 65.0, 22.49)
	if !errors.Is(err, serr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// Ошибка на втором INSERT — транзакция откатывается
func TestCreateMeasurement_HistoryInsertFails(t *testing.T) {
	t.Parallel()
	repo, mock := newRecordsRepo(t)

	userID := uuid.New()
	createdAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO bmi_records`)).
		WithArgs(userID, 30, "male", 170.0, 65.0, 22.49).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(uuid.New(), createdAt))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO bmi_history`)).
		WithArgs(userID, 22.49, createdAt).
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	_, _, err := repo.CreateMeasurement(context.Background(), userID, 30, "male", 170.0, 65.0, 22.49)
	if !errors.Is(err, serr.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListHistory_Success(t *testing.T) {
	t.Parallel()
	repo, mock := newRecordsRepo(t)

	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT recorded_at, bmi`)).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"recorded_at", "bmi"}).
			AddRow(now, 23.1).
			AddRow(now.Add(-24*time.Hour), 22.8))

	history, err := repo.ListHistory(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(history))
	}
	if history[0].Bmi != 23.1 {
		t.Fatalf("expected bmi 23.1 first, got %v", history[0].Bmi)
	}
}

// Пустая история — пустой срез, не nil и не ошибка
func TestListHistory_Empty(t *testing.T) {
	t.Parallel()
	repo, mock := newRecordsRepo(t)

	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT recorded_at, bmi`)).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"recorded_at", "bmi"}))

	history, err := repo.ListHistory(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if history == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(history) != 0 {
		t.Fatalf("expected 0 entries, got %d", len(history))
	}
}

func TestListMeasurements_Success(t *testing.T) {
	t.Parallel()
	repo, mock := newRecordsRepo(t)

	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, age, gender, height_cm, weight_kg, bmi, created_at`)).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "age", "gender", "height_cm", "weight_kg", "bmi", "created_at"}).
			AddRow(uuid.NewString(), 30, "male", 170.0, 65.0, 22.49, now))

	records, err := repo.ListMeasurements(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Height != 170.0 || records[0].Weight != 65.0 {
		t.Fatalf("unexpected record: %+v", records[0])
	}
}

func TestListMeasurements_DBError(t *testing.T) {
	t.Parallel()
	repo, mock := newRecordsRepo(t)

	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, age, gender, height_cm, weight_kg, bmi, created_at`)).
		WithArgs(userID).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.ListMeasurements(context.Background(), userID)
	if !errors.Is(err, serr.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
