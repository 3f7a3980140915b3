package tests

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/server/middleware"
)

// Тело в пределах лимита читается целиком
func TestBodyLimit_WithinLimit(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("unexpected read error: %v", err)
		}
		if len(b) != 10 {
			t.Fatalf("expected 10 bytes, got %d", len(b))
		}
	})

	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(strings.Repeat("x", 10)))
	w := httptest.NewRecorder()

	middleware.BodyLimitMiddleware(100)(next).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

// Тело сверх лимита — чтение обрывается ошибкой
func TestBodyLimit_Exceeded(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err == nil {
			t.Fatal("expected read error for oversized body")
		}
		w.WriteHeader(http.StatusBadRequest)
	})

	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(strings.Repeat("x", 200)))
	w := httptest.NewRecorder()

	middleware.BodyLimitMiddleware(100)(next).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

// Нулевой лимит отключает ограничение
func TestBodyLimit_Disabled(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("unexpected read error: %v", err)
		}
		if len(b) != 200 {
			t.Fatalf("expected 200 bytes, got %d", len(b))
		}
	})

	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(strings.Repeat("x", 200)))
	w := httptest.NewRecorder()

	middleware.BodyLimitMiddleware(0)(next).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
