package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	serr "github.com/IvanChernomyrdin/go-bmi-tracker/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/shared/models"
)

// RecordsRepository реализует доступ к хранилищу измерений BMI (PostgreSQL).
// Отвечает исключительно за сохранение и извлечение данных без бизнес-логики.
type RecordsRepository struct {
	db *sql.DB
}

// NewRecordsRepository создаёт новый экземпляр RecordsRepository.
func NewRecordsRepository(db *sql.DB) *RecordsRepository {
	return &RecordsRepository{db: db}
}

// CreateMeasurement сохраняет измерение пользователя.
//
// В одной транзакции пишутся две строки:
//   - полная запись в bmi_records (age/gender/height/weight/bmi);
//   - короткая запись {date, bmi} в bmi_history.
//
// Append в историю — это обычный INSERT, никакого read-modify-write,
// поэтому два одновременных измерения одного пользователя не теряются.
//
// Ошибки:
//   - ErrNotFound — пользователь не существует (FK violation);
//   - ErrInternal — ошибка базы данных.
func (r *RecordsRepository) CreateMeasurement(
	ctx context.Context,
	userID uuid.UUID,
	age int,
	gender string,
	heightCm float64,
	weightKg float64,
	bmi float64,
) (uuid.UUID, time.Time, error) {

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, time.Time{}, serr.ErrInternal
	}
	defer tx.Rollback()

	var (
		id        uuid.UUID
		createdAt time.Time
	)

	err = tx.QueryRowContext(ctx, `
		INSERT INTO bmi_records (user_id, age, gender, height_cm, weight_kg, bmi)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`,
		userID, age, gender, heightCm, weightKg, bmi,
	).Scan(&id, &createdAt)

	if err != nil {
		return uuid.Nil, time.Time{}, mapRecordErr(err)
	}

	// created_at переносим из bmi_records, чтобы обе строки имели одну дату
	_, err = tx.ExecContext(ctx, `
		INSERT INTO bmi_history (user_id, bmi, recorded_at)
		VALUES ($1, $2, $3)
	`,
		userID, bmi, createdAt,
	)
	if err != nil {
		return uuid.Nil, time.Time{}, mapRecordErr(err)
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, time.Time{}, serr.ErrInternal
	}

	return id, createdAt, nil
}

// ListHistory возвращает историю измерений пользователя,
// отсортированную по дате по убыванию.
//
// Пустая история — это пустой срез, не ошибка.
func (r *RecordsRepository) ListHistory(ctx context.Context, userID uuid.UUID) ([]models.HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT recorded_at, bmi
		FROM bmi_history
		WHERE user_id = $1
		ORDER BY recorded_at DESC
	`, userID)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	history := make([]models.HistoryEntry, 0)
	for rows.Next() {
		var e models.HistoryEntry
		if err := rows.Scan(&e.Date, &e.Bmi); err != nil {
			return nil, serr.ErrInternal
		}
		history = append(history, e)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return history, nil
}

// ListMeasurements возвращает полные записи измерений пользователя
// (эндпоинт /api/bmi/history), свежие первыми.
func (r *RecordsRepository) ListMeasurements(ctx context.Context, userID uuid.UUID) ([]models.Measurement, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, age, gender, height_cm, weight_kg, bmi, created_at
		FROM bmi_records
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	records := make([]models.Measurement, 0)
	for rows.Next() {
		var m models.Measurement
		if err := rows.Scan(&m.ID, &m.Age, &m.Gender, &m.Height, &m.Weight, &m.Bmi, &m.Date); err != nil {
			return nil, serr.ErrInternal
		}
		records = append(records, m)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return records, nil
}

// mapRecordErr переводит ошибки Postgres в доменные.
func mapRecordErr(err error) error {
	if pgErr, ok := err.(*pgconn.PgError); ok {
		if pgErr.Code == "23503" { // foreign_key_violation — пользователя нет
			return serr.ErrNotFound
		}
	}
	return serr.ErrInternal
}
