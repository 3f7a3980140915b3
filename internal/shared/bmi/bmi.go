// Package bmi содержит чистые функции расчёта индекса массы тела.
//
// Пакет общий для сервера (пересчёт и проверка присланных значений)
// и CLI-клиента (локальный расчёт перед отправкой) — источник формулы
// и порогов один.
package bmi

// Категории BMI. Границы полуоткрытые: [18.5,25), [25,30).
// Раньше в клиентских скриптах встречались 24.9/29.9 — оставляем один вариант.
const (
	CategoryUnderweight = "Underweight"
	CategoryHealthy     = "Healthy"
	CategoryOverweight  = "Overweight"
	CategoryObesity     = "Obesity"
)

// Compute считает индекс массы тела: вес(кг) / (рост(м))^2.
// Рост принимается в сантиметрах.
func Compute(heightCm, weightKg float64) float64 {
	m := heightCm / 100
	return weightKg / (m * m)
}

// Category возвращает категорию для значения bmi.
func Category(bmi float64) string {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryHealthy
	case bmi < 30:
		return CategoryOverweight
	default:
		return CategoryObesity
	}
}
