package models

import "time"

// HistoryEntry — одна запись истории измерений пользователя.
//
// Используется и сервером (ответы /api/bmi/history, profile.bmiHistory),
// и CLI-клиентом (вывод истории, локальный кэш).
//
// Поля:
//   - Date: серверное время записи измерения
//   - Bmi: вычисленный индекс массы тела
type HistoryEntry struct {
	Date time.Time `json:"date"`
	Bmi  float64   `json:"bmi"`
}

// Measurement — плоская модель измерения BMI, используемая в HTTP API.
//
// Height хранится в сантиметрах, Weight — в килограммах.
// Gender — свободная строка, сервер её не интерпретирует.
type Measurement struct {
	ID     string    `json:"id"`
	Age    int       `json:"age"`
	Gender string    `json:"gender"`
	Height float64   `json:"height"`
	Weight float64   `json:"weight"`
	Bmi    float64   `json:"bmi"`
	Date   time.Time `json:"date"`
}

// Profile — ответ эндпоинта профиля пользователя.
//
// Используется в:
//
//	GET /api/user/profile
//
// BmiHistory отсортирована по дате по убыванию (свежие записи первыми).
type Profile struct {
	Name       string         `json:"name"`
	Age        int            `json:"age"`
	Email      string         `json:"email"`
	Hobbies    string         `json:"hobbies"`
	BmiHistory []HistoryEntry `json:"bmiHistory"`
}
