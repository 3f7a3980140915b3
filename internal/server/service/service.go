// Package service содержит бизнес-логику приложения.
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/server/config"
	srvmodels "github.com/IvanChernomyrdin/go-bmi-tracker/internal/server/models"
	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/shared/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users   UsersRepo
	Records RecordsRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth *AuthService
	Bmi  *BmiService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (хэширование пароля, JWT) и BmiService (политика приёма измерений).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth: NewAuthService(repos.Users, cfg),
		Bmi:  NewBmiService(repos.Records, repos.Users, cfg.Bmi),
	}
}

// UsersRepo — репозиторий пользователей (нужен для signup/login/profile).
type UsersRepo interface {
	Create(ctx context.Context, email, name string, age int, hobbies, passwordHash string) (uuid.UUID, error)
	GetByEmail(ctx context.Context, email string) (uuid.UUID, string, error)
	GetByID(ctx context.Context, id uuid.UUID) (srvmodels.User, error)
}

// RecordsRepo — репозиторий измерений BMI.
type RecordsRepo interface {
	CreateMeasurement(ctx context.Context, userID uuid.UUID, age int, gender string, heightCm, weightKg, bmi float64) (uuid.UUID, time.Time, error)
	ListHistory(ctx context.Context, userID uuid.UUID) ([]models.HistoryEntry, error)
	ListMeasurements(ctx context.Context, userID uuid.UUID) ([]models.Measurement, error)
}
