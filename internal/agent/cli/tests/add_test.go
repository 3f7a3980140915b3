package tests

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/agent/config"
)

// Успех: bmi считается локально, в запрос уходит вычисленное значение
func TestAddCmd_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/user/calc", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Fatalf("unexpected auth header: %q", got)
		}

		var req struct {
			Age    int     `json:"age"`
			Gender string  `json:"gender"`
			Height float64 `json:"height"`
			Weight float64 `json:"weight"`
			Bmi    float64 `json:"bmi"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Height != 170 || req.Weight != 65 || req.Age != 30 {
			t.Fatalf("unexpected request: %+v", req)
		}
		// 65 / 1.7^2 ~ 22.49
		if math.Abs(req.Bmi-22.4913) > 0.001 {
			t.Fatalf("unexpected bmi: %v", req.Bmi)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "id": "rec-1"})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := &cli.App{
		ServerURL: srv.URL,
		Creds:     &config.Credentials{AccessToken: "tok"},
	}

	cmd := cli.NewAddCmd(app)

	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--height", "170", "--weight", "65", "--age", "30", "--gender", "M"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "bmi=22.49 (Healthy)") {
		t.Fatalf("unexpected output: %q", out.String())
	}
	if !strings.Contains(out.String(), "saved (id=rec-1)") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

// Без токена команда отказывает сразу, на сервер не ходим
func TestAddCmd_NoToken(t *testing.T) {
	app := &cli.App{
		ServerURL: "https://127.0.0.1:1",
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewAddCmd(app)
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})
	cmd.SetArgs([]string{"--height", "170", "--weight", "65", "--age", "30"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "login") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Отрицательный вес — локальная валидация
func TestAddCmd_BadInput(t *testing.T) {
	app := &cli.App{
		ServerURL: "https://127.0.0.1:1",
		Creds:     &config.Credentials{AccessToken: "tok"},
	}

	cmd := cli.NewAddCmd(app)
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})
	cmd.SetArgs([]string{"--height", "170", "--weight", "-5", "--age", "30"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error")
	}
}
