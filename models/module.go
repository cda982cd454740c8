package models

// Module is a learning module grouping lessons and quizzes.
type Module struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Difficulty    string   `json:"difficulty"`
	EstimatedTime int      `json:"estimated_time"` // minutes
	Lessons       []Lesson `json:"lessons"`
	Quizzes       []string `json:"quizzes"` // quiz IDs
	Prerequisites []string `json:"prerequisites,omitempty"`
}

// Lesson is a unit of learning content within a module.
type Lesson struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Examples      []Example `json:"examples,omitempty"`
	Interactive   bool      `json:"interactive,omitempty"`
	EstimatedTime int       `json:"estimated_time"` // minutes
}

// Example is a worked example attached to a lesson.
type Example struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Calculation string `json:"calculation,omitempty"`
	Result      string `json:"result,omitempty"`
}
