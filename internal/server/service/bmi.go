package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/server/config"
	calc "github.com/IvanChernomyrdin/go-bmi-tracker/internal/shared/bmi"
	serr "github.com/IvanChernomyrdin/go-bmi-tracker/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/shared/models"
)

// BmiService реализует бизнес-логику измерений BMI.
// Сервис:
//   - валидирует входные данные;
//   - пересчитывает bmi и сверяет с присланным значением;
//   - не знает о HTTP и БД напрямую.
type BmiService struct {
	records RecordsRepo
	users   UsersRepo
	policy  config.BmiConfig
}

// NewBmiService создаёт новый BmiService.
func NewBmiService(records RecordsRepo, users UsersRepo, policy config.BmiConfig) *BmiService {
	return &BmiService{
		records: records,
		users:   users,
		policy:  policy,
	}
}

// Record принимает измерение и сохраняет его.
//
// Валидации:
//   - userID — валидный UUID;
//   - рост и вес положительные и в разумных пределах политики;
//   - возраст в диапазоне (0, policy.MaxAge);
//   - присланный bmi сверяется с пересчётом по росту/весу,
//     расхождение больше policy.Tolerance — отказ.
//
// Ошибки:
//   - ErrInvalidInput — невалидные данные;
//   - ErrBmiMismatch — bmi не сходится с ростом/весом;
//   - ErrNotFound — пользователь не существует;
//   - ErrInternal — ошибка хранилища.
func (s *BmiService) Record(
	ctx context.Context,
	userID string,
	age int,
	gender string,
	heightCm float64,
	weightKg float64,
	bmi float64,
) (uuid.UUID, time.Time, error) {

	uid, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, time.Time{}, serr.ErrInvalidInput
	}

	if heightCm <= 0 || weightKg <= 0 {
		return uuid.Nil, time.Time{}, serr.ErrInvalidInput
	}
	if heightCm > s.policy.MaxHeight || weightKg > s.policy.MaxWeight {
		return uuid.Nil, time.Time{}, serr.ErrInvalidInput
	}
	if age <= 0 || age >= s.policy.MaxAge {
		return uuid.Nil, time.Time{}, serr.ErrInvalidInput
	}

	gender = strings.TrimSpace(gender)

	// клиент считает bmi сам, но на слово не верим
	if math.Abs(calc.Compute(heightCm, weightKg)-bmi) > s.policy.Tolerance {
		return uuid.Nil, time.Time{}, serr.ErrBmiMismatch
	}

	return s.records.CreateMeasurement(ctx, uid, age, gender, heightCm, weightKg, bmi)
}

// Profile возвращает профиль пользователя вместе с историей измерений.
//
// Ошибки:
//   - ErrInvalidInput — кривой userID;
//   - ErrNotFound — пользователя нет;
//   - ErrInternal — ошибка хранилища.
func (s *BmiService) Profile(ctx context.Context, userID string) (models.Profile, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return models.Profile{}, serr.ErrInvalidInput
	}

	u, err := s.users.GetByID(ctx, uid)
	if err != nil {
		return models.Profile{}, err
	}

	history, err := s.records.ListHistory(ctx, uid)
	if err != nil {
		return models.Profile{}, err
	}

	return models.Profile{
		Name:       u.Name,
		Age:        u.Age,
		Email:      u.Email,
		Hobbies:    u.Hobbies,
		BmiHistory: history,
	}, nil
}

// History возвращает полные записи измерений пользователя, свежие первыми.
// Пустая история — пустой срез, не ошибка.
func (s *BmiService) History(ctx context.Context, userID string) ([]models.Measurement, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, serr.ErrInvalidInput
	}
	return s.records.ListMeasurements(ctx, uid)
}
