package storage

import (
	"database/sql"
	"fmt"
	"time"

	"fin-arcade-api/models"
	"fin-arcade-api/utils"
)

func (s *SQLiteStore) CreateUser(req models.UserRequest) (*models.User, error) {
	utils.LogDB("Creating user: %s", req.Username)
	start := time.Now()

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	result, err := s.Exec(`
        INSERT INTO users (username, email, password_hash)
        VALUES (?, ?, ?)
    `, req.Username, req.Email, passwordHash)

	if err != nil {
		duration := time.Since(start)
		utils.LogError("CreateUser failed: %v (%v)", err, duration)
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		utils.LogError("Failed to get user LastInsertId: %v", err)
		return nil, err
	}

	duration := time.Since(start)
	utils.LogDB("User created with ID %d in %v", id, duration)

	return s.GetUserByID(int(id))
}

func (s *SQLiteStore) GetUserByID(id int) (*models.User, error) {
	var u models.User

	err := s.QueryRow(`
        SELECT id, username, email, is_active, created_at, updated_at
        FROM users WHERE id = ?
    `, id).Scan(&u.ID, &u.Username, &u.Email, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		utils.LogError("GetUserByID(%d) failed: %v", id, err)
		return nil, err
	}

	return &u, nil
}

func (s *SQLiteStore) GetUserByUsername(username string) (*models.User, error) {
	var u models.User

	err := s.QueryRow(`
        SELECT id, username, email, is_active, created_at, updated_at
        FROM users WHERE username = ?
    `, username).Scan(&u.ID, &u.Username, &u.Email, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (s *SQLiteStore) AuthenticateUser(username, password string) (*models.User, error) {
	utils.LogDB("Authenticating user: %s", username)

	var u models.User
	var passwordHash string

	err := s.QueryRow(`
        SELECT id, username, email, password_hash, is_active, created_at, updated_at
        FROM users WHERE username = ? AND is_active = 1
    `, username).Scan(&u.ID, &u.Username, &u.Email, &passwordHash, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err != nil {
		utils.LogError("AuthenticateUser query failed: %v", err)
		return nil, err
	}

	if !utils.CheckPassword(passwordHash, password) {
		return nil, fmt.Errorf("invalid credentials")
	}

	return &u, nil
}

func (s *SQLiteStore) GetAllUsers() ([]models.User, error) {
	rows, err := s.Query(`
        SELECT id, username, email, is_active, created_at, updated_at
        FROM users WHERE is_active = 1
        ORDER BY id
    `)
	if err != nil {
		utils.LogError("GetAllUsers failed: %v", err)
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			utils.LogError("Failed to scan user row: %v", err)
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
