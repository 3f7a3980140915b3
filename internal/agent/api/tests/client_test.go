package tests

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/agent/api"
)

// Не-2xx: текст тела ответа становится текстом ошибки
func TestClient_ErrorBodySurfaced(t *testing.T) {
	t.Parallel()

	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"user already exists"}`, http.StatusConflict)
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL)

	err := c.PostJSON("/signup", map[string]string{"email": "a@x.com"}, nil, "")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected error body in message, got %q", err.Error())
	}
}

// Не-2xx с пустым телом: ошибкой становится res.Status
func TestClient_EmptyErrorBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL)

	err := c.GetJSON("/api/bmi/history", nil, "token")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Fatalf("expected status in message, got %q", err.Error())
	}
}

// 2xx с пустым телом — не ошибка
func TestClient_EmptySuccessBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL)

	var resp struct{}
	if err := c.GetJSON("/ping", &resp, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Завершающий "/" у baseURL не ломает пути
func TestClient_TrailingSlash(t *testing.T) {
	t.Parallel()

	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sign" {
			t.Fatalf("unexpected path: %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL + "/")
	if err := c.PostJSON("/sign", nil, nil, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
