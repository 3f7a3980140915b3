// Ограничение размера тела запроса
package middleware

import "net/http"

// BodyLimitMiddleware ограничивает размер тела запроса maxBytes байтами.
//
// Чтение сверх лимита обрывается (http.MaxBytesReader), декодер JSON
// в хендлере получает ошибку и отвечает 400.
// При maxBytes <= 0 лимит не применяется.
func BodyLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if maxBytes > 0 && r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
