package gamification

import (
	"fmt"
	"time"

	"fin-arcade-api/models"
	"fin-arcade-api/storage"
	"fin-arcade-api/utils"

	"github.com/google/uuid"
)

// Notifier receives gamification events worth telling the user about.
// Implementations must not block.
type Notifier interface {
	LevelUp(userID int, level models.Level, xp int)
	StreakBroken(userID int, previousStreak int)
}

// Tracker is the single source of truth for XP, level and streak state.
// All mutations load the current record (or a default), apply the change and
// persist. Storage failures degrade to defaults and are never surfaced.
type Tracker struct {
	store    storage.Store
	notifier Notifier
	now      func() time.Time
}

func New(store storage.Store, notifier Notifier) *Tracker {
	return &Tracker{
		store:    store,
		notifier: notifier,
		now:      time.Now,
	}
}

// DefaultProgress builds a zero-valued progress record with a fresh user ID.
func (t *Tracker) DefaultProgress() *models.UserProgress {
	return &models.UserProgress{
		UserID:           uuid.NewString(),
		Level:            models.LevelBeginner,
		XP:               0,
		Streak:           0,
		Badges:           []string{},
		CompletedModules: []string{},
		QuizScores:       make(map[string]float64),
		WeakAreas:        []string{},
		LastActive:       t.now(),
		TotalTimeSpent:   0,
	}
}

func (t *Tracker) loadOrDefault(userID int) *models.UserProgress {
	progress, err := t.store.GetProgress(userID)
	if err != nil {
		utils.LogError("Failed to load progress for user %d, using defaults: %v", userID, err)
		progress = nil
	}
	if progress == nil {
		return t.DefaultProgress()
	}
	if progress.QuizScores == nil {
		progress.QuizScores = make(map[string]float64)
	}
	if progress.Badges == nil {
		progress.Badges = []string{}
	}
	if progress.CompletedModules == nil {
		progress.CompletedModules = []string{}
	}
	if progress.WeakAreas == nil {
		progress.WeakAreas = []string{}
	}
	return progress
}

func (t *Tracker) save(userID int, progress *models.UserProgress) {
	if err := t.store.SaveProgress(userID, progress); err != nil {
		utils.LogError("Failed to persist progress for user %d: %v", userID, err)
	}
}

// InitializeProgress is the idempotent entry point called when a user loads
// the app. It creates and persists a default record on first call and
// otherwise rolls the streak forward.
func (t *Tracker) InitializeProgress(userID int) *models.UserProgress {
	existing, err := t.store.GetProgress(userID)
	if err != nil {
		utils.LogError("Failed to check progress for user %d: %v", userID, err)
	}
	if existing != nil {
		return t.UpdateStreak(userID)
	}

	progress := t.DefaultProgress()
	t.save(userID, progress)
	utils.LogInfo("Initialized progress for user %d (progress ID %s)", userID, progress.UserID)
	return progress
}

// AddXP adds XP and recomputes the level. Crossing into a new level awards a
// flat one-time bonus in the same operation; the level is recomputed from the
// final total so the cached level always matches the stored XP.
func (t *Tracker) AddXP(userID int, amount int, kind models.XPKind, description string) *models.UserProgress {
	current := t.loadOrDefault(userID)

	newXP := current.XP + amount
	newLevel := LevelFromXP(newXP)
	leveledUp := newLevel != current.Level

	if leveledUp {
		// Single bonus per call, even when the bonus itself crosses
		// another threshold
		newXP += models.XPLevelUpBonus
		newLevel = LevelFromXP(newXP)
	}

	current.XP = newXP
	current.Level = newLevel
	current.LastActive = t.now()
	t.save(userID, current)

	utils.LogInfo("Awarded %d XP to user %d (%s: %s), total now %d", amount, userID, kind, description, current.XP)

	if leveledUp {
		utils.LogInfo("User %d leveled up to %s", userID, current.Level)
		if t.notifier != nil {
			t.notifier.LevelUp(userID, current.Level, current.XP)
		}
	}

	return current
}

// UpdateStreak rolls the daily streak based on whole days elapsed since the
// last recorded activity: one day continues the streak and pays the daily
// bonus, more than one day resets it, same day leaves it alone.
func (t *Tracker) UpdateStreak(userID int) *models.UserProgress {
	current := t.loadOrDefault(userID)
	now := t.now()

	daysDiff := int(now.Sub(current.LastActive).Hours() / 24)

	switch {
	case daysDiff == 1:
		newStreak := current.Streak + 1
		current = t.AddXP(userID, models.XPDailyStreak, models.XPKindStreak,
			fmt.Sprintf("Daily streak: %d days", newStreak))
		current.Streak = newStreak
	case daysDiff > 1:
		if current.Streak > 1 && t.notifier != nil {
			t.notifier.StreakBroken(userID, current.Streak)
		}
		current.Streak = 1
	}

	current.LastActive = now
	t.save(userID, current)

	if current.Streak >= 7 {
		return t.AwardBadge(userID, models.BadgeWeekStreak)
	}
	return current
}

// AwardBadge inserts a badge into the badge set. Awarding an already-held
// badge is a no-op.
func (t *Tracker) AwardBadge(userID int, badgeID string) *models.UserProgress {
	current := t.loadOrDefault(userID)

	for _, b := range current.Badges {
		if b == badgeID {
			return current
		}
	}

	current.Badges = append(current.Badges, badgeID)
	t.save(userID, current)
	utils.LogInfo("Awarded badge %q to user %d", badgeID, userID)
	return current
}

// CompleteModule records a finished module and pays the lesson XP reward on
// first completion. Completing a module twice changes nothing.
func (t *Tracker) CompleteModule(userID int, moduleID string) *models.UserProgress {
	current := t.loadOrDefault(userID)

	for _, m := range current.CompletedModules {
		if m == moduleID {
			return current
		}
	}

	firstModule := len(current.CompletedModules) == 0
	current.CompletedModules = append(current.CompletedModules, moduleID)
	t.save(userID, current)

	updated := t.AddXP(userID, models.XPLesson, models.XPKindLesson, "Completed module: "+moduleID)
	if firstModule {
		updated = t.AwardBadge(userID, models.BadgeFirstModule)
	}
	return updated
}

// RecordTime adds study minutes to the running total.
func (t *Tracker) RecordTime(userID int, minutes int) *models.UserProgress {
	current := t.loadOrDefault(userID)
	if minutes > 0 {
		current.TotalTimeSpent += minutes
		t.save(userID, current)
	}
	return current
}
