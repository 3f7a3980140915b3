package tests

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/server/api"
	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/server/config"
	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/server/service"
	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/server/service/mocks"
	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/shared/logger"
)

const testSigningKey = "supersecretkeysupersecretkey123456"

// NewTestHandler собирает Handler на моках репозиториев.
// Логгер — no-op, чтобы тесты не писали файлов.
func NewTestHandler(t *testing.T) (*api.Handler, *mocks.MockUsersRepo, *mocks.MockRecordsRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := mocks.NewMockUsersRepo(ctrl)
	records := mocks.NewMockRecordsRepo(ctrl)

	cfg := &config.Config{
		Auth: config.AuthConfig{
			Issuer:    "bmi-tracker",
			Audience:  "bmitrack-cli",
			AccessTTL: time.Hour,
			JWT: config.JWTConfig{
				Algorithm:  "HS256",
				SigningKey: testSigningKey,
			},
		},
		Password: config.PasswordConfig{
			Hasher: "argon2id",
			Argon2: config.Argon2Config{
				Time:      1,
				MemoryKiB: 16 * 1024,
				Threads:   1,
				KeyLen:    32,
				SaltLen:   16,
			},
		},
		Bmi: config.BmiConfig{
			Tolerance: 0.1,
			MaxAge:    150,
			MaxHeight: 300,
			MaxWeight: 700,
		},
	}

	svc := service.NewServices(service.Repositories{Users: users, Records: records}, cfg)
	verifier := middleware.NewJWTVerifier(cfg.Auth.JWT.SigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)
	log := &logger.HTTPLogger{Logger: zap.NewNop()}

	return api.NewHandler(svc, log, verifier), users, records
}

// makeToken выпускает валидный access токен для тестов.
func makeToken(t *testing.T, userID, email string) string {
	t.Helper()

	token, err := crypto.NewAccessToken(userID, email, crypto.JWTConfig{
		Issuer:     "bmi-tracker",
		Audience:   "bmitrack-cli",
		SigningKey: testSigningKey,
		AccessTTL:  time.Hour,
	})
	if err != nil {
		t.Fatalf("make token: %v", err)
	}
	return token
}
