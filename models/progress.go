package models

import "time"

// Level is one of four ordered tiers derived from XP.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelExpert       Level = "expert"
)

// UserProgress is the singleton progress record kept per user. Level is a
// cached field and must always equal the level derived from XP.
type UserProgress struct {
	UserID           string             `json:"user_id"`
	Level            Level              `json:"level"`
	XP               int                `json:"xp"`
	Streak           int                `json:"streak"`
	Badges           []string           `json:"badges"`
	CompletedModules []string           `json:"completed_modules"`
	QuizScores       map[string]float64 `json:"quiz_scores"`
	WeakAreas        []string           `json:"weak_areas"`
	LastActive       time.Time          `json:"last_active"`
	TotalTimeSpent   int                `json:"total_time_spent"` // minutes
}

// XPKind classifies the source of an XP award.
type XPKind string

const (
	XPKindLesson       XPKind = "lesson"
	XPKindQuiz         XPKind = "quiz"
	XPKindChallenge    XPKind = "challenge"
	XPKindStreak       XPKind = "streak"
	XPKindActivity     XPKind = "activity"
	XPKindPerfectScore XPKind = "perfect-score"
)

// XP reward amounts
const (
	XPLesson       = 50
	XPQuizCorrect  = 25
	XPPerfectQuiz  = 100
	XPDailyStreak  = 10
	XPChallenge    = 200
	XPActivity     = 75
	XPLevelUpBonus = 50
)

// ValidXPKind reports whether kind is a known XP source.
func ValidXPKind(kind XPKind) bool {
	switch kind {
	case XPKindLesson, XPKindQuiz, XPKindChallenge, XPKindStreak, XPKindActivity, XPKindPerfectScore:
		return true
	}
	return false
}

// Badge identifiers
const (
	BadgePerfectQuiz = "perfect-quiz"
	BadgeWeekStreak  = "week-streak"
	BadgeFirstModule = "first-module"
)
