package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"fin-arcade-api/auth"
	"fin-arcade-api/content"
	"fin-arcade-api/gamification"
	"fin-arcade-api/models"
	"fin-arcade-api/utils"
)

type ProgressHandlers struct {
	sessionStore *auth.SessionStore
	tracker      *gamification.Tracker
}

func NewProgressHandlers(sessionStore *auth.SessionStore, tracker *gamification.Tracker) *ProgressHandlers {
	return &ProgressHandlers{
		sessionStore: sessionStore,
		tracker:      tracker,
	}
}

// HandleProgress serves GET /progress: the idempotent load-or-create entry
// point, which also rolls the streak forward for returning users.
func (ph *ProgressHandlers) HandleProgress(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("%s /progress", r.Method)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session := getSessionFromContext(r.Context())
	if session == nil {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	progress := ph.tracker.InitializeProgress(session.UserID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(withLevelMeta(progress))
}

// HandleProgressAction routes POST /progress/{xp,streak,time} and
// POST /progress/modules/{id}/complete.
func (ph *ProgressHandlers) HandleProgressAction(w http.ResponseWriter, r *http.Request) {
	session := getSessionFromContext(r.Context())
	if session == nil {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/progress/")
	utils.LogHTTP("%s /progress/%s", r.Method, path)

	switch {
	case path == "xp" && r.Method == http.MethodPost:
		ph.addXP(w, r, session.UserID)
	case path == "streak" && r.Method == http.MethodPost:
		ph.updateStreak(w, session.UserID)
	case path == "time" && r.Method == http.MethodPost:
		ph.recordTime(w, r, session.UserID)
	case strings.HasPrefix(path, "modules/") && strings.HasSuffix(path, "/complete") && r.Method == http.MethodPost:
		moduleID := strings.TrimSuffix(strings.TrimPrefix(path, "modules/"), "/complete")
		ph.completeModule(w, session.UserID, moduleID)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

type xpRequest struct {
	Amount      int           `json:"amount"`
	Kind        models.XPKind `json:"kind"`
	Description string        `json:"description"`
}

func (ph *ProgressHandlers) addXP(w http.ResponseWriter, r *http.Request, userID int) {
	var req xpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogHTTP("Invalid JSON in XP request: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.Amount < 0 {
		http.Error(w, "Amount must be non-negative", http.StatusBadRequest)
		return
	}
	if !models.ValidXPKind(req.Kind) {
		http.Error(w, "Unknown XP kind", http.StatusBadRequest)
		return
	}

	progress := ph.tracker.AddXP(userID, req.Amount, req.Kind, req.Description)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(withLevelMeta(progress))
}

func (ph *ProgressHandlers) updateStreak(w http.ResponseWriter, userID int) {
	progress := ph.tracker.UpdateStreak(userID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(withLevelMeta(progress))
}

type timeRequest struct {
	Minutes int `json:"minutes"`
}

func (ph *ProgressHandlers) recordTime(w http.ResponseWriter, r *http.Request, userID int) {
	var req timeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogHTTP("Invalid JSON in time request: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.Minutes <= 0 {
		http.Error(w, "Minutes must be positive", http.StatusBadRequest)
		return
	}

	progress := ph.tracker.RecordTime(userID, req.Minutes)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(withLevelMeta(progress))
}

func (ph *ProgressHandlers) completeModule(w http.ResponseWriter, userID int, moduleID string) {
	if content.GetModule(moduleID) == nil {
		http.Error(w, "Unknown module", http.StatusNotFound)
		return
	}

	progress := ph.tracker.CompleteModule(userID, moduleID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(withLevelMeta(progress))
}

// withLevelMeta decorates a progress record with the derived level metadata
// that the client renders on the XP bar.
func withLevelMeta(progress *models.UserProgress) map[string]interface{} {
	return map[string]interface{}{
		"progress":               progress,
		"xp_for_next_level":      gamification.XPForNextLevel(progress.XP),
		"progress_to_next_level": gamification.ProgressToNextLevel(progress.XP),
	}
}
