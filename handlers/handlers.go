package handlers

import (
	"net/http"

	"fin-arcade-api/auth"
	"fin-arcade-api/gamification"
	"fin-arcade-api/quiz"
	"fin-arcade-api/storage"
	"fin-arcade-api/utils"
)

// API wrapper to hold all handlers
type API struct {
	authHandlers        *AuthHandlers
	progressHandlers    *ProgressHandlers
	quizHandlers        *QuizHandlers
	contentHandlers     *ContentHandlers
	calculatorHandlers  *CalculatorHandlers
	settingsHandlers    *SettingsHandlers
	leaderboardHandlers *LeaderboardHandlers
}

func NewAPI(store *storage.SQLiteStore, sessionStore *auth.SessionStore, tracker *gamification.Tracker, engine *quiz.Engine) *API {
	return &API{
		authHandlers:        NewAuthHandlers(store, sessionStore, tracker),
		progressHandlers:    NewProgressHandlers(sessionStore, tracker),
		quizHandlers:        NewQuizHandlers(store, sessionStore, engine),
		contentHandlers:     NewContentHandlers(),
		calculatorHandlers:  NewCalculatorHandlers(),
		settingsHandlers:    NewSettingsHandlers(store, sessionStore),
		leaderboardHandlers: NewLeaderboardHandlers(store, sessionStore),
	}
}

func NewRouter(store *storage.SQLiteStore, sessionStore *auth.SessionStore, tracker *gamification.Tracker, engine *quiz.Engine) http.Handler {
	api := NewAPI(store, sessionStore, tracker, engine)

	mux := http.NewServeMux()

	// Health check (no auth required)
	mux.HandleFunc("/health", healthCheck)

	// Auth endpoints (handle their own auth as needed)
	mux.HandleFunc("/auth/", api.authHandlers.HandleAuth)

	// Module catalog (public)
	mux.HandleFunc("/modules", api.contentHandlers.HandleModules)
	mux.HandleFunc("/modules/", api.contentHandlers.HandleModuleByID)

	// Quiz routes with auth: quiz payloads carry the answer keys
	mux.HandleFunc("/quizzes", authMiddleware(api.quizHandlers.HandleQuizzes, sessionStore))
	mux.HandleFunc("/quizzes/", authMiddleware(api.quizHandlers.HandleQuizByID, sessionStore))

	// Progress routes with auth
	mux.HandleFunc("/progress", authMiddleware(api.progressHandlers.HandleProgress, sessionStore))
	mux.HandleFunc("/progress/", authMiddleware(api.progressHandlers.HandleProgressAction, sessionStore))

	// Settings routes with auth
	mux.HandleFunc("/settings", authMiddleware(api.settingsHandlers.HandleSettings, sessionStore))

	// Leaderboard with auth
	mux.HandleFunc("/leaderboard", authMiddleware(api.leaderboardHandlers.HandleLeaderboard, sessionStore))

	// Calculators (public, stateless)
	mux.HandleFunc("/calculators/", api.calculatorHandlers.HandleCalculators)

	return corsMiddleware(loggingMiddleware(mux))
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("Health check requested")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
