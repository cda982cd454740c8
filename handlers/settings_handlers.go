package handlers

import (
	"encoding/json"
	"net/http"

	"fin-arcade-api/auth"
	"fin-arcade-api/storage"
	"fin-arcade-api/utils"
)

type SettingsHandlers struct {
	store        storage.Store
	sessionStore *auth.SessionStore
}

func NewSettingsHandlers(store storage.Store, sessionStore *auth.SessionStore) *SettingsHandlers {
	return &SettingsHandlers{
		store:        store,
		sessionStore: sessionStore,
	}
}

// HandleSettings serves GET and PUT /settings. Settings are a free-form
// object owned by the client; PUT replaces the stored object wholesale.
func (sh *SettingsHandlers) HandleSettings(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("%s /settings", r.Method)

	session := getSessionFromContext(r.Context())
	if session == nil {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		sh.getSettings(w, session.UserID)
	case http.MethodPut:
		sh.updateSettings(w, r, session.UserID)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (sh *SettingsHandlers) getSettings(w http.ResponseWriter, userID int) {
	settings, err := sh.store.GetSettings(userID)
	if err != nil {
		utils.LogError("Failed to fetch settings for user %d: %v", userID, err)
		http.Error(w, "Failed to fetch settings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settings)
}

func (sh *SettingsHandlers) updateSettings(w http.ResponseWriter, r *http.Request, userID int) {
	var settings map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		utils.LogHTTP("Invalid JSON in settings request: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := sh.store.SaveSettings(userID, settings); err != nil {
		utils.LogError("Failed to save settings for user %d: %v", userID, err)
		http.Error(w, "Failed to save settings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settings)
}
