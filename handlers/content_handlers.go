package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"fin-arcade-api/content"
	"fin-arcade-api/utils"
)

// ContentHandlers serves the static module catalog.
type ContentHandlers struct{}

func NewContentHandlers() *ContentHandlers {
	return &ContentHandlers{}
}

func (ch *ContentHandlers) HandleModules(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("%s /modules", r.Method)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(content.Modules())
}

// HandleModuleByID routes GET /modules/{id} and GET /modules/{id}/quizzes.
func (ch *ContentHandlers) HandleModuleByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/modules/")
	utils.LogHTTP("GET /modules/%s", path)

	moduleID := strings.TrimSuffix(path, "/quizzes")
	module := content.GetModule(moduleID)
	if module == nil {
		http.Error(w, "Unknown module", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if strings.HasSuffix(path, "/quizzes") {
		json.NewEncoder(w).Encode(content.GetQuizzesByModule(moduleID))
		return
	}
	json.NewEncoder(w).Encode(module)
}
