package quiz

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"fin-arcade-api/gamification"
	"fin-arcade-api/models"
	"fin-arcade-api/storage"
	"fin-arcade-api/utils"
)

// answerTolerance is the absolute tolerance for numeric answers, so small
// rounding differences on calculation questions still count as correct.
const answerTolerance = 0.01

// Engine grades quiz attempts and feeds results into the progress tracker.
type Engine struct {
	store   storage.Store
	tracker *gamification.Tracker
	now     func() time.Time
}

func New(store storage.Store, tracker *gamification.Tracker) *Engine {
	return &Engine{
		store:   store,
		tracker: tracker,
		now:     time.Now,
	}
}

// numericValue extracts a float64 from the types an answer can arrive as:
// catalog literals (int, float64) or decoded JSON (float64, json.Number).
func numericValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// CheckAnswer compares a submitted answer against the question's correct
// answer. Numeric pairs compare within an absolute tolerance; everything else
// compares as lowercased, trimmed strings.
func CheckAnswer(question *models.Question, submitted interface{}) bool {
	if submitted == nil {
		return false
	}

	correctNum, correctIsNum := numericValue(question.CorrectAnswer)
	submittedNum, submittedIsNum := numericValue(submitted)

	if correctIsNum && submittedIsNum {
		return math.Abs(correctNum-submittedNum) < answerTolerance
	}

	return utils.NormalizeAnswer(fmt.Sprint(question.CorrectAnswer)) ==
		utils.NormalizeAnswer(fmt.Sprint(submitted))
}

// CalculateScore grades every question in quiz order. A missing answer counts
// as incorrect. The score is an unrounded percentage.
func (e *Engine) CalculateScore(quiz *models.Quiz, answers map[string]interface{}) *models.QuizResult {
	correct := 0
	var mistakes []string

	for i := range quiz.Questions {
		question := &quiz.Questions[i]
		if CheckAnswer(question, answers[question.ID]) {
			correct++
		} else {
			mistakes = append(mistakes, question.ID)
		}
	}

	score := 0.0
	if len(quiz.Questions) > 0 {
		score = float64(correct) / float64(len(quiz.Questions)) * 100
	}

	return &models.QuizResult{
		QuizID:         quiz.ID,
		Score:          score,
		CorrectAnswers: correct,
		TotalQuestions: len(quiz.Questions),
		Answers:        answers,
		Mistakes:       mistakes,
		CompletedAt:    e.now(),
	}
}

// SubmitQuiz grades an attempt, persists the result (overwriting any prior
// attempt for the quiz), awards XP through the tracker and records the score
// and missed topics on the progress record. The result is returned to the
// caller regardless of persistence outcome. The XP write and the
// score/weak-area write are two independent persistence operations.
func (e *Engine) SubmitQuiz(userID int, quiz *models.Quiz, answers map[string]interface{}) *models.QuizResult {
	result := e.CalculateScore(quiz, answers)

	utils.LogInfo("User %d submitted quiz %s: %d/%d correct (%.1f%%)",
		userID, quiz.ID, result.CorrectAnswers, result.TotalQuestions, result.Score)

	if err := e.store.SaveQuizResult(userID, quiz.ID, *result); err != nil {
		utils.LogError("Failed to save result for quiz %s: %v", quiz.ID, err)
	}

	e.tracker.AddXP(userID, result.CorrectAnswers*models.XPQuizCorrect, models.XPKindQuiz,
		"Quiz: "+quiz.Title)

	if result.Score == 100 {
		e.tracker.AddXP(userID, models.XPPerfectQuiz, models.XPKindPerfectScore,
			"Perfect score on "+quiz.Title)
		e.tracker.AwardBadge(userID, models.BadgePerfectQuiz)
	}

	e.recordOutcome(userID, quiz, result)

	return result
}

// recordOutcome writes the quiz score and any new weak areas onto the
// progress record. This is a separate write path from AddXP.
func (e *Engine) recordOutcome(userID int, quiz *models.Quiz, result *models.QuizResult) {
	progress, err := e.store.GetProgress(userID)
	if err != nil {
		utils.LogError("Failed to load progress recording quiz %s outcome: %v", quiz.ID, err)
		return
	}
	if progress == nil {
		return
	}

	if progress.QuizScores == nil {
		progress.QuizScores = make(map[string]float64)
	}
	progress.QuizScores[quiz.ID] = result.Score

	if len(result.Mistakes) > 0 {
		progress.WeakAreas = mergeWeakAreas(progress.WeakAreas, missedTopics(quiz, result.Mistakes))
	}

	if err := e.store.SaveProgress(userID, progress); err != nil {
		utils.LogError("Failed to record quiz %s outcome: %v", quiz.ID, err)
	}
}

// missedTopics resolves missed question IDs to their topic labels.
func missedTopics(quiz *models.Quiz, mistakes []string) []string {
	var topics []string
	for _, id := range mistakes {
		for i := range quiz.Questions {
			if quiz.Questions[i].ID == id && quiz.Questions[i].Topic != "" {
				topics = append(topics, quiz.Questions[i].Topic)
				break
			}
		}
	}
	return topics
}

// mergeWeakAreas unions new topics into the existing set without duplicates.
func mergeWeakAreas(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, topic := range existing {
		seen[topic] = true
	}
	for _, topic := range incoming {
		if !seen[topic] {
			seen[topic] = true
			existing = append(existing, topic)
		}
	}
	return existing
}

// MistakeReplayQuestions returns the quiz's questions matching the given
// missed question IDs, for replaying after a failed attempt.
func MistakeReplayQuestions(quiz *models.Quiz, mistakes []string) []models.Question {
	missed := make(map[string]bool, len(mistakes))
	for _, id := range mistakes {
		missed[id] = true
	}

	var questions []models.Question
	for _, q := range quiz.Questions {
		if missed[q.ID] {
			questions = append(questions, q)
		}
	}
	return questions
}
