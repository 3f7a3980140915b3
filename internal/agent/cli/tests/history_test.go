package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/agent/config"
	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/agent/memory"
	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/shared/models"
)

// Успех: история с сервера печатается построчно
func TestHistoryCmd_FromServer(t *testing.T) {
	date := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/bmi/history", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Fatalf("unexpected auth header: %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"records": []models.Measurement{
				{ID: "id-1", Age: 30, Gender: "M", Height: 170, Weight: 65, Bmi: 22.49, Date: date},
			},
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := &cli.App{
		ServerURL: srv.URL,
		Creds:     &config.Credentials{AccessToken: "tok"},
	}

	cmd := cli.NewHistoryCmd(app)

	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "2026-08-30 12:00  bmi=22.49  height=170.0  weight=65.0") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

// Пустая история — дружелюбное сообщение
func TestHistoryCmd_Empty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bmi/history", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"records": []models.Measurement{}})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := &cli.App{
		ServerURL: srv.URL,
		Creds:     &config.Credentials{AccessToken: "tok"},
	}

	cmd := cli.NewHistoryCmd(app)

	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "no measurements yet") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

// --local: читаем кэш, на сервер не ходим
func TestHistoryCmd_Local(t *testing.T) {
	date := time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC)

	origLoad := cli.LoadHistoryFile
	cli.LoadHistoryFile = func(path string, store *memory.HistoryStore) error {
		store.ReplaceAll([]models.Measurement{
			{ID: "id-1", Height: 170, Weight: 65, Bmi: 22.49, Date: date},
		})
		return nil
	}
	t.Cleanup(func() { cli.LoadHistoryFile = origLoad })

	app := &cli.App{
		// сервера нет: --local не должен к нему ходить
		ServerURL: "https://127.0.0.1:1",
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewHistoryCmd(app)

	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--local"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "2026-08-29 09:30  bmi=22.49") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

// Без токена и без --local — просим залогиниться
func TestHistoryCmd_NoToken(t *testing.T) {
	app := &cli.App{
		ServerURL: "https://127.0.0.1:1",
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewHistoryCmd(app)
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "login") {
		t.Fatalf("unexpected error: %v", err)
	}
}
