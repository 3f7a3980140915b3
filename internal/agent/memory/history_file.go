package memory

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/shared/models"
)

// HistoryDump — формат файла локального кэша истории.
//
// Файл содержит объект вида:
//
//	{ "records": [ ... ] }
type HistoryDump struct {
	Records []models.Measurement `json:"records"`
}

// DefaultHistoryPath возвращает путь по умолчанию для локального файла истории.
//
// Путь формируется как:
//
//	$HOME/.bmitrack/history.json
func DefaultHistoryPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".bmitrack", "history.json"), nil
}

// SaveToFile сериализует текущее состояние store в JSON и сохраняет в файл по пути path.
//
// Поведение:
//   - создаёт директорию для файла (MkdirAll) с правами 0700;
//   - сохраняет файл с правами 0600;
//   - формат JSON: HistoryDump{Records:[...]} с отступами (MarshalIndent).
func SaveToFile(path string, store *HistoryStore) error {
	out := HistoryDump{Records: store.List()}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// LoadFromFile загружает локальную историю из файла в store.
//
// Если файла нет — store остаётся пустым, ошибки нет.
func LoadFromFile(path string, store *HistoryStore) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var dump HistoryDump
	if err := json.Unmarshal(b, &dump); err != nil {
		return err
	}

	store.ReplaceAll(dump.Records)
	return nil
}
