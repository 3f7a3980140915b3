package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/server/middleware"
	serr "github.com/IvanChernomyrdin/go-bmi-tracker/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/shared/models"
)

// CalcRequest тело запроса сохранения измерения.
//
// Bmi клиент считает сам, но сервер пересчитывает по Height/Weight
// и отклоняет расхождения.
type CalcRequest struct {
	Age    int     `json:"age"`
	Gender string  `json:"gender"`
	Height float64 `json:"height"` // см
	Weight float64 `json:"weight"` // кг
	Bmi    float64 `json:"bmi"`
}

// CalcResponse успешный ответ сохранения измерения.
type CalcResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// Calc сохраняет измерение BMI для аутентифицированного пользователя.
//
// Сервер:
//   - валидирует рост/вес/возраст;
//   - пересчитывает bmi и сверяет с присланным значением;
//   - в одной транзакции пишет запись и строку истории.
//
// Требует JWT-аутентификацию.
//
// Возможные ошибки:
//   - ErrInvalidInput / ErrBmiMismatch — неверные поля запроса;
//   - ErrUnauthorized — пользователь не аутентифицирован;
//   - ErrNotFound — пользователь из токена уже не существует;
//   - ErrInternal — внутренняя ошибка сервера.
//
// @Summary      Record BMI
// @Description  Stores a BMI measurement for the authenticated user. The server recomputes bmi from height and weight and rejects mismatches.
// @Tags         bmi
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CalcRequest true "Measurement"
// @Success      201 {object} CalcResponse
// @Failure      400 {object} ErrorResponse "Invalid input or bmi mismatch"
// @Failure      401 {object} ErrorResponse "Missing token"
// @Failure      403 {object} ErrorResponse "Invalid or expired token"
// @Failure      404 {object} ErrorResponse "User not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/user/calc [post]
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req CalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	id, _, err := h.Svc.Bmi.Record(
		r.Context(),
		userID,
		req.Age,
		req.Gender,
		req.Height,
		req.Weight,
		req.Bmi,
	)

	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrBmiMismatch):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		default:
			h.Log.Logger.Sugar().Errorw(
				"record bmi failed",
				"error", err,
				"user_id", userID,
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CalcResponse{
		Success: true,
		ID:      id.String(),
	})
}

// Profile возвращает профиль текущего пользователя вместе с историей BMI.
//
// Пользователь определяется по JWT-токену (middleware).
//
// Возможные ошибки:
//   - 401 Unauthorized: отсутствует токен;
//   - 404 Not Found: пользователь из токена уже не существует;
//   - 500 Internal Server Error: ошибка доступа к хранилищу.
//
// @Summary      Get profile
// @Description  Returns name, age, email, hobbies and BMI history (newest first) of the authenticated user.
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.Profile
// @Failure      401 {object} ErrorResponse "Missing token"
// @Failure      403 {object} ErrorResponse "Invalid or expired token"
// @Failure      404 {object} ErrorResponse "User not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/user/profile [get]
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	profile, err := h.Svc.Bmi.Profile(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		default:
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(profile)
}

// GetHistoryResponse — ответ эндпоинта истории измерений.
type GetHistoryResponse struct {
	Records []models.Measurement `json:"records"`
}

// History возвращает все измерения текущего пользователя, свежие первыми.
//
// Пустая история — это 200 с пустым массивом, не ошибка.
//
// @Summary      BMI history
// @Description  Returns all BMI measurements of the authenticated user, newest first.
// @Tags         bmi
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} GetHistoryResponse
// @Failure      401 {object} ErrorResponse "Missing token"
// @Failure      403 {object} ErrorResponse "Invalid or expired token"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/bmi/history [get]
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	records, err := h.Svc.Bmi.History(r.Context(), userID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(GetHistoryResponse{Records: records})
}
