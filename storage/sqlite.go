package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"fin-arcade-api/models"
	"fin-arcade-api/utils"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persists user accounts and per-user state in SQLite. State
// records are JSON blobs keyed by (user_id, key) with the three fixed keys
// from store.go.
type SQLiteStore struct {
	*sql.DB
}

func Open(dbPath string) (*SQLiteStore, error) {
	utils.LogStartup("Initializing database at: %s", dbPath)

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		utils.LogError("Failed to open database: %v", err)
		return nil, err
	}

	if err := db.Ping(); err != nil {
		utils.LogError("Failed to ping database: %v", err)
		return nil, err
	}

	utils.LogStartup("Database connection established")

	if err := createTables(db); err != nil {
		utils.LogError("Failed to create tables: %v", err)
		return nil, err
	}

	utils.LogStartup("Database tables initialized successfully")
	return &SQLiteStore{db}, nil
}

func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Per-user state blobs: progress record, quiz results, settings
		`CREATE TABLE IF NOT EXISTS user_state (
			user_id INTEGER NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (user_id, key),
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		)`,
	}

	for i, query := range queries {
		utils.LogDB("Creating table %d/%d", i+1, len(queries))
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_user_state_key ON user_state(key)",
	}

	for _, index := range indexes {
		if _, err := db.Exec(index); err != nil {
			utils.LogDB("Failed to create index (non-fatal): %v", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Available() bool {
	return true
}

// getState returns the raw JSON for a state key, or nil when unset.
func (s *SQLiteStore) getState(userID int, key string) ([]byte, error) {
	var value string
	err := s.QueryRow(`
        SELECT value FROM user_state WHERE user_id = ? AND key = ?
    `, userID, key).Scan(&value)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		utils.LogError("Failed to read state %q for user %d: %v", key, userID, err)
		return nil, err
	}
	return []byte(value), nil
}

func (s *SQLiteStore) setState(userID int, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		utils.LogError("Failed to marshal state %q for user %d: %v", key, userID, err)
		return err
	}

	_, err = s.Exec(`
        INSERT INTO user_state (user_id, key, value, updated_at)
        VALUES (?, ?, ?, CURRENT_TIMESTAMP)
        ON CONFLICT(user_id, key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
    `, userID, key, string(data))

	if err != nil {
		utils.LogError("Failed to write state %q for user %d: %v", key, userID, err)
		return err
	}
	return nil
}

func (s *SQLiteStore) GetProgress(userID int) (*models.UserProgress, error) {
	data, err := s.getState(userID, KeyProgress)
	if err != nil || data == nil {
		return nil, err
	}

	var progress models.UserProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		// Malformed stored JSON is treated as absent
		utils.LogError("Malformed progress record for user %d, treating as absent: %v", userID, err)
		return nil, nil
	}
	return &progress, nil
}

func (s *SQLiteStore) SaveProgress(userID int, progress *models.UserProgress) error {
	return s.setState(userID, KeyProgress, progress)
}

func (s *SQLiteStore) GetQuizResults(userID int) (map[string]models.QuizResult, error) {
	results := make(map[string]models.QuizResult)

	data, err := s.getState(userID, KeyQuizResults)
	if err != nil || data == nil {
		return results, err
	}

	if err := json.Unmarshal(data, &results); err != nil {
		utils.LogError("Malformed quiz results for user %d, treating as empty: %v", userID, err)
		return make(map[string]models.QuizResult), nil
	}
	return results, nil
}

func (s *SQLiteStore) SaveQuizResult(userID int, quizID string, result models.QuizResult) error {
	results, err := s.GetQuizResults(userID)
	if err != nil {
		return err
	}
	results[quizID] = result
	return s.setState(userID, KeyQuizResults, results)
}

func (s *SQLiteStore) GetSettings(userID int) (map[string]interface{}, error) {
	settings := make(map[string]interface{})

	data, err := s.getState(userID, KeySettings)
	if err != nil || data == nil {
		return settings, err
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		utils.LogError("Malformed settings for user %d, treating as empty: %v", userID, err)
		return make(map[string]interface{}), nil
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(userID int, settings map[string]interface{}) error {
	return s.setState(userID, KeySettings, settings)
}

// AllProgress returns every stored progress record keyed by account ID.
// Malformed rows are skipped.
func (s *SQLiteStore) AllProgress() (map[int]*models.UserProgress, error) {
	rows, err := s.Query(`
        SELECT user_id, value FROM user_state WHERE key = ?
    `, KeyProgress)
	if err != nil {
		utils.LogError("Failed to query progress records: %v", err)
		return nil, err
	}
	defer rows.Close()

	all := make(map[int]*models.UserProgress)
	for rows.Next() {
		var userID int
		var value string
		if err := rows.Scan(&userID, &value); err != nil {
			utils.LogError("Failed to scan progress row: %v", err)
			return nil, err
		}

		var progress models.UserProgress
		if err := json.Unmarshal([]byte(value), &progress); err != nil {
			utils.LogError("Skipping malformed progress record for user %d: %v", userID, err)
			continue
		}
		all[userID] = &progress
	}
	return all, rows.Err()
}
