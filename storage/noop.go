package storage

import "fin-arcade-api/models"

// NoopStore is the Store used when no persistent storage is available.
// Reads return empty values and writes are discarded, so callers proceed
// with in-memory defaults instead of failing.
type NoopStore struct{}

func NewNoopStore() *NoopStore {
	return &NoopStore{}
}

func (NoopStore) Available() bool {
	return false
}

func (NoopStore) GetProgress(userID int) (*models.UserProgress, error) {
	return nil, nil
}

func (NoopStore) SaveProgress(userID int, progress *models.UserProgress) error {
	return nil
}

func (NoopStore) GetQuizResults(userID int) (map[string]models.QuizResult, error) {
	return make(map[string]models.QuizResult), nil
}

func (NoopStore) SaveQuizResult(userID int, quizID string, result models.QuizResult) error {
	return nil
}

func (NoopStore) GetSettings(userID int) (map[string]interface{}, error) {
	return make(map[string]interface{}), nil
}

func (NoopStore) SaveSettings(userID int, settings map[string]interface{}) error {
	return nil
}
