package models

import "time"

// Question types
const (
	QuestionMultipleChoice = "multiple-choice"
	QuestionCalculation    = "calculation"
	QuestionInteractive    = "interactive"
	QuestionTrueFalse      = "true-false"
)

// Question is a single quiz question. CorrectAnswer holds a string for
// choice/text questions or a number for calculation questions.
type Question struct {
	ID            string      `json:"id"`
	Type          string      `json:"type"`
	Question      string      `json:"question"`
	Choices       []string    `json:"choices,omitempty"`
	CorrectAnswer interface{} `json:"correct_answer"`
	Explanation   string      `json:"explanation"`
	Topic         string      `json:"topic"`
	Difficulty    string      `json:"difficulty"`
	Points        int         `json:"points"`
}

// Quiz is a static, read-only quiz definition belonging to one module.
type Quiz struct {
	ID           string     `json:"id"`
	ModuleID     string     `json:"module_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Questions    []Question `json:"questions"`
	Difficulty   string     `json:"difficulty"`
	TimeLimit    int        `json:"time_limit,omitempty"` // seconds, 0 = no limit
	PassingScore float64    `json:"passing_score"`        // percentage, descriptive only
}

// QuizResult records a graded quiz attempt. One result is kept per quiz id,
// each submission overwriting the previous one.
type QuizResult struct {
	QuizID         string                 `json:"quiz_id"`
	Score          float64                `json:"score"`
	CorrectAnswers int                    `json:"correct_answers"`
	TotalQuestions int                    `json:"total_questions"`
	TimeSpent      int                    `json:"time_spent"` // seconds
	Answers        map[string]interface{} `json:"answers"`
	Mistakes       []string               `json:"mistakes"` // question IDs, in quiz order
	CompletedAt    time.Time              `json:"completed_at"`
}

// Passed reports whether the result meets the quiz's passing score.
func (r *QuizResult) Passed(quiz *Quiz) bool {
	return r.Score >= quiz.PassingScore
}
