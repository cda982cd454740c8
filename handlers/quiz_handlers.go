package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"fin-arcade-api/auth"
	"fin-arcade-api/content"
	"fin-arcade-api/quiz"
	"fin-arcade-api/storage"
	"fin-arcade-api/utils"
)

type QuizHandlers struct {
	store        storage.Store
	sessionStore *auth.SessionStore
	engine       *quiz.Engine
}

func NewQuizHandlers(store storage.Store, sessionStore *auth.SessionStore, engine *quiz.Engine) *QuizHandlers {
	return &QuizHandlers{
		store:        store,
		sessionStore: sessionStore,
		engine:       engine,
	}
}

// HandleQuizzes serves GET /quizzes: the full quiz catalog.
func (qh *QuizHandlers) HandleQuizzes(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("%s /quizzes", r.Method)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(content.Quizzes())
}

// HandleQuizByID routes GET /quizzes/{id}, POST /quizzes/{id}/submit,
// GET /quizzes/{id}/result and GET /quizzes/{id}/mistakes.
func (qh *QuizHandlers) HandleQuizByID(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/quizzes/")
	utils.LogHTTP("%s /quizzes/%s", r.Method, path)

	parts := strings.SplitN(path, "/", 2)
	quizID := parts[0]
	action := ""
	if len(parts) == 2 {
		action = parts[1]
	}

	selected := content.GetQuiz(quizID)
	if selected == nil {
		http.Error(w, "Unknown quiz", http.StatusNotFound)
		return
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(selected)
	case action == "submit" && r.Method == http.MethodPost:
		qh.submitQuiz(w, r, quizID)
	case action == "result" && r.Method == http.MethodGet:
		qh.getResult(w, r, quizID)
	case action == "mistakes" && r.Method == http.MethodGet:
		qh.getMistakeReplay(w, r, quizID)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

type submitRequest struct {
	Answers map[string]interface{} `json:"answers"`
}

func (qh *QuizHandlers) submitQuiz(w http.ResponseWriter, r *http.Request, quizID string) {
	session := getSessionFromContext(r.Context())
	if session == nil {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogHTTP("Invalid JSON in quiz submission: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Answers == nil {
		req.Answers = make(map[string]interface{})
	}

	selected := content.GetQuiz(quizID)
	result := qh.engine.SubmitQuiz(session.UserID, selected, req.Answers)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"result": result,
		"passed": result.Passed(selected),
	})
}

func (qh *QuizHandlers) getResult(w http.ResponseWriter, r *http.Request, quizID string) {
	session := getSessionFromContext(r.Context())
	if session == nil {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	results, err := qh.store.GetQuizResults(session.UserID)
	if err != nil {
		utils.LogError("Failed to fetch quiz results for user %d: %v", session.UserID, err)
		http.Error(w, "Failed to fetch results", http.StatusInternalServerError)
		return
	}

	result, ok := results[quizID]
	if !ok {
		http.Error(w, "No result recorded for quiz", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (qh *QuizHandlers) getMistakeReplay(w http.ResponseWriter, r *http.Request, quizID string) {
	session := getSessionFromContext(r.Context())
	if session == nil {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	results, err := qh.store.GetQuizResults(session.UserID)
	if err != nil {
		utils.LogError("Failed to fetch quiz results for user %d: %v", session.UserID, err)
		http.Error(w, "Failed to fetch results", http.StatusInternalServerError)
		return
	}

	result, ok := results[quizID]
	if !ok {
		http.Error(w, "No result recorded for quiz", http.StatusNotFound)
		return
	}

	questions := quiz.MistakeReplayQuestions(content.GetQuiz(quizID), result.Mistakes)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(questions)
}
