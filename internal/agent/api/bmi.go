// Методы клиента для эндпоинтов измерений: отправка, история, профиль.
package api

import "github.com/IvanChernomyrdin/go-bmi-tracker/internal/shared/models"

// CalcRequest описывает тело запроса сохранения измерения.
//
// Bmi вычисляется на клиенте; сервер пересчитает и сверит.
type CalcRequest struct {
	Age    int     `json:"age"`
	Gender string  `json:"gender"`
	Height float64 `json:"height"` // см
	Weight float64 `json:"weight"` // кг
	Bmi    float64 `json:"bmi"`
}

// CalcResponse описывает ответ сервера при успешном сохранении измерения.
type CalcResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// HistoryResponse описывает ответ эндпоинта истории измерений.
type HistoryResponse struct {
	Records []models.Measurement `json:"records"`
}

// SubmitMeasurement отправляет измерение на сервер.
//
// Метод отправляет POST запрос на /api/user/calc с access токеном.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) SubmitMeasurement(req CalcRequest, accessToken string) (CalcResponse, error) {
	var resp CalcResponse
	err := c.PostJSON("/api/user/calc", req, &resp, accessToken)
	return resp, err
}

// History запрашивает полную историю измерений пользователя.
//
// Метод отправляет GET запрос на /api/bmi/history с access токеном.
// Сервер возвращает записи по дате по убыванию.
func (c *Client) History(accessToken string) (HistoryResponse, error) {
	var resp HistoryResponse
	err := c.GetJSON("/api/bmi/history", &resp, accessToken)
	return resp, err
}

// Profile запрашивает профиль текущего пользователя с короткой историей BMI.
//
// Метод отправляет GET запрос на /api/user/profile с access токеном.
func (c *Client) Profile(accessToken string) (models.Profile, error) {
	var resp models.Profile
	err := c.GetJSON("/api/user/profile", &resp, accessToken)
	return resp, err
}
