package storage

import "fin-arcade-api/models"

// Storage keys for the three per-user state namespaces.
const (
	KeyProgress    = "progress"
	KeyQuizResults = "quiz-results"
	KeySettings    = "settings"
)

// Store is the key-value persistence adapter for per-user state. Reads return
// empty values (nil progress, empty maps) when nothing has been written or the
// backing store is unavailable; they do not fail on missing data. Writes
// overwrite unconditionally and silently no-op when storage is unavailable.
// There is no transactional guarantee across keys.
type Store interface {
	GetProgress(userID int) (*models.UserProgress, error)
	SaveProgress(userID int, progress *models.UserProgress) error

	GetQuizResults(userID int) (map[string]models.QuizResult, error)
	SaveQuizResult(userID int, quizID string, result models.QuizResult) error

	GetSettings(userID int) (map[string]interface{}, error)
	SaveSettings(userID int, settings map[string]interface{}) error

	// Available reports whether the backing store accepted writes at
	// construction time.
	Available() bool
}
