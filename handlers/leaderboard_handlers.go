package handlers

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"

	"fin-arcade-api/auth"
	"fin-arcade-api/models"
	"fin-arcade-api/storage"
	"fin-arcade-api/utils"
)

const defaultLeaderboardSize = 20

type LeaderboardHandlers struct {
	store        *storage.SQLiteStore
	sessionStore *auth.SessionStore
}

func NewLeaderboardHandlers(store *storage.SQLiteStore, sessionStore *auth.SessionStore) *LeaderboardHandlers {
	return &LeaderboardHandlers{
		store:        store,
		sessionStore: sessionStore,
	}
}

// LeaderboardEntry is one ranked row.
type LeaderboardEntry struct {
	Rank   int          `json:"rank"`
	Name   string       `json:"name"`
	XP     int          `json:"xp"`
	Level  models.Level `json:"level"`
	Streak int          `json:"streak"`
	You    bool         `json:"you,omitempty"`
}

// HandleLeaderboard serves GET /leaderboard: users ranked by XP.
func (lh *LeaderboardHandlers) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("%s /leaderboard", r.Method)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session := getSessionFromContext(r.Context())
	if session == nil {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	limit := defaultLeaderboardSize
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	allProgress, err := lh.store.AllProgress()
	if err != nil {
		http.Error(w, "Failed to build leaderboard", http.StatusInternalServerError)
		return
	}

	users, err := lh.store.GetAllUsers()
	if err != nil {
		http.Error(w, "Failed to build leaderboard", http.StatusInternalServerError)
		return
	}

	var entries []LeaderboardEntry
	for _, user := range users {
		progress, ok := allProgress[user.ID]
		if !ok {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			Name:   user.Username,
			XP:     progress.XP,
			Level:  progress.Level,
			Streak: progress.Streak,
			You:    user.ID == session.UserID,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].XP > entries[j].XP
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}

	utils.LogHTTP("Returning leaderboard with %d entries", len(entries))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}
