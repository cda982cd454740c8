package storage

import (
	"encoding/json"
	"sync"

	"fin-arcade-api/models"
)

// MemoryStore is an in-memory Store used in tests and embedded contexts.
// Values round-trip through JSON so callers see the same serialization
// behavior as the SQLite store.
type MemoryStore struct {
	mu    sync.RWMutex
	state map[int]map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		state: make(map[int]map[string][]byte),
	}
}

func (m *MemoryStore) Available() bool {
	return true
}

func (m *MemoryStore) get(userID int, key string) []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state[userID][key]
}

func (m *MemoryStore) set(userID int, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state[userID] == nil {
		m.state[userID] = make(map[string][]byte)
	}
	m.state[userID][key] = data
	return nil
}

func (m *MemoryStore) GetProgress(userID int) (*models.UserProgress, error) {
	data := m.get(userID, KeyProgress)
	if data == nil {
		return nil, nil
	}

	var progress models.UserProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		return nil, nil
	}
	return &progress, nil
}

func (m *MemoryStore) SaveProgress(userID int, progress *models.UserProgress) error {
	return m.set(userID, KeyProgress, progress)
}

func (m *MemoryStore) GetQuizResults(userID int) (map[string]models.QuizResult, error) {
	results := make(map[string]models.QuizResult)
	data := m.get(userID, KeyQuizResults)
	if data == nil {
		return results, nil
	}
	if err := json.Unmarshal(data, &results); err != nil {
		return make(map[string]models.QuizResult), nil
	}
	return results, nil
}

func (m *MemoryStore) SaveQuizResult(userID int, quizID string, result models.QuizResult) error {
	results, _ := m.GetQuizResults(userID)
	results[quizID] = result
	return m.set(userID, KeyQuizResults, results)
}

func (m *MemoryStore) GetSettings(userID int) (map[string]interface{}, error) {
	settings := make(map[string]interface{})
	data := m.get(userID, KeySettings)
	if data == nil {
		return settings, nil
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return make(map[string]interface{}), nil
	}
	return settings, nil
}

func (m *MemoryStore) SaveSettings(userID int, settings map[string]interface{}) error {
	return m.set(userID, KeySettings, settings)
}
