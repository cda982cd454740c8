package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"fin-arcade-api/auth"
	"fin-arcade-api/gamification"
	"fin-arcade-api/models"
	"fin-arcade-api/storage"
	"fin-arcade-api/utils"
)

type AuthHandlers struct {
	store        *storage.SQLiteStore
	sessionStore *auth.SessionStore
	tracker      *gamification.Tracker
}

func NewAuthHandlers(store *storage.SQLiteStore, sessionStore *auth.SessionStore, tracker *gamification.Tracker) *AuthHandlers {
	return &AuthHandlers{
		store:        store,
		sessionStore: sessionStore,
		tracker:      tracker,
	}
}

func (ah *AuthHandlers) HandleAuth(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/auth/")

	switch {
	case path == "register" && r.Method == http.MethodPost:
		ah.register(w, r)
	case path == "login" && r.Method == http.MethodPost:
		ah.login(w, r)
	case path == "logout" && r.Method == http.MethodPost:
		ah.logout(w, r)
	case path == "me" && r.Method == http.MethodGet:
		ah.getCurrentUserInfo(w, r)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

func validateUserRequest(req *models.UserRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if strings.TrimSpace(req.Password) == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

func (ah *AuthHandlers) register(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("POST /auth/register")

	var req models.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogHTTP("Invalid JSON in register request: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := validateUserRequest(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := ah.store.CreateUser(req)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			if strings.Contains(err.Error(), "username") {
				http.Error(w, "Username already exists", http.StatusConflict)
			} else if strings.Contains(err.Error(), "email") {
				http.Error(w, "Email already exists", http.StatusConflict)
			} else {
				http.Error(w, "User already exists", http.StatusConflict)
			}
		} else if strings.Contains(err.Error(), "password") {
			http.Error(w, err.Error(), http.StatusBadRequest)
		} else {
			utils.LogError("Failed to create user: %v", err)
			http.Error(w, "Failed to create user", http.StatusInternalServerError)
		}
		return
	}

	// Create the zero-valued progress record up front
	progress := ah.tracker.InitializeProgress(user.ID)

	// Create session for immediate login
	session := ah.sessionStore.CreateSession(user)

	utils.LogHTTP("User registered successfully: %s (ID: %d)", user.Username, user.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"user":     user,
		"session":  session,
		"progress": progress,
		"message":  "Registration successful",
	})
}

func (ah *AuthHandlers) login(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("POST /auth/login")

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogHTTP("Invalid JSON in login request: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	user, err := ah.store.AuthenticateUser(req.Username, req.Password)
	if err != nil {
		utils.LogHTTP("Login failed for user: %s", req.Username)
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	session := ah.sessionStore.CreateSession(user)

	utils.LogHTTP("User logged in successfully: %s (ID: %d)", user.Username, user.ID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"user":    user,
		"session": session,
		"message": "Login successful",
	})
}

func (ah *AuthHandlers) logout(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("POST /auth/logout")

	sessionID := extractSessionFromRequest(r)
	if sessionID != "" {
		ah.sessionStore.DeleteSession(sessionID)
		if len(sessionID) > 8 {
			utils.LogHTTP("Session %s destroyed", sessionID[:8]+"...")
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Logout successful",
	})
}

func (ah *AuthHandlers) getCurrentUserInfo(w http.ResponseWriter, r *http.Request) {
	session := getSessionFromRequest(r, ah.sessionStore)
	if session == nil {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	user, err := ah.store.GetUserByID(session.UserID)
	if err != nil {
		utils.LogError("Failed to fetch user %d: %v", session.UserID, err)
		http.Error(w, "Failed to fetch user", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}
