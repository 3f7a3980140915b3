package memory

import (
	"sync"

	"github.com/IvanChernomyrdin/go-bmi-tracker/internal/shared/models"
)

// HistoryStore — потокобезопасное in-memory хранилище истории измерений.
//
// Используется CLI для:
//   - полной замены локального состояния после sync (ReplaceAll)
//   - чтения локальной копии истории без похода на сервер (List)
//
// Порядок записей сохраняется таким, каким его прислал сервер
// (по дате по убыванию).
type HistoryStore struct {
	mu      sync.RWMutex
	records []models.Measurement
}

// NewHistory создаёт пустое хранилище истории.
func NewHistory() *HistoryStore {
	return &HistoryStore{
		records: make([]models.Measurement, 0),
	}
}

// ReplaceAll полностью заменяет содержимое стора переданным списком.
func (s *HistoryStore) ReplaceAll(records []models.Measurement) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]models.Measurement, len(records))
	copy(s.records, records)
}

// List возвращает копию локальной истории.
func (s *HistoryStore) List() []models.Measurement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Measurement, len(s.records))
	copy(out, s.records)
	return out
}

// Len возвращает количество локально сохранённых записей.
func (s *HistoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
