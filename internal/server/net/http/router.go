// Package http реализует маршрутизацию HTTP-слоя сервера.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов;
//   - проверку JWT access-токенов на защищённых путях.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/server/api"
	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные эндпоинты /signup и /sign;
//   - middleware логирования и лимита тела запроса для всех запросов;
//   - группу защищённых JWT эндпоинтов под /api.
//
// maxBodyBytes — лимит размера тела запроса (server.max_body_bytes),
// <= 0 отключает ограничение.
func NewRouter(h *api.Handler, maxBodyBytes int64) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())
	// лимит тела запроса
	r.Use(middleware.BodyLimitMiddleware(maxBodyBytes))

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	// Публичные пути
	r.Post("/signup", h.Signup) // регистрация
	r.Post("/sign", h.Sign)     // логин, выдаёт токен на час
	// защищённые пути
	r.Group(func(r chi.Router) {
		// проверка access токена: нет токена — 401, битый/просроченный — 403
		r.Use(h.Verifier.AuthMiddleware())
		r.Route("/api", func(r chi.Router) {
			r.Get("/user/profile", h.Profile) // профиль + история
			r.Post("/user/calc", h.Calc)      // сохранить измерение
			r.Get("/bmi/history", h.History)  // полная история, свежие первыми
		})
	})

	return r
}
