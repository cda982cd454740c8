package gamification

import (
	"testing"
	"time"

	"fin-arcade-api/models"
	"fin-arcade-api/storage"
)

type notifierSpy struct {
	levelUps      []models.Level
	streaksBroken []int
}

func (n *notifierSpy) LevelUp(userID int, level models.Level, xp int) {
	n.levelUps = append(n.levelUps, level)
}

func (n *notifierSpy) StreakBroken(userID int, previousStreak int) {
	n.streaksBroken = append(n.streaksBroken, previousStreak)
}

func newTestTracker(at time.Time) (*Tracker, *storage.MemoryStore, *notifierSpy) {
	store := storage.NewMemoryStore()
	spy := &notifierSpy{}
	tracker := New(store, spy)
	tracker.now = func() time.Time { return at }
	return tracker, store, spy
}

func TestInitializeProgressCreatesDefault(t *testing.T) {
	tracker, store, _ := newTestTracker(time.Now())

	progress := tracker.InitializeProgress(1)
	if progress.UserID == "" {
		t.Error("expected a generated progress ID")
	}
	if progress.Level != models.LevelBeginner || progress.XP != 0 || progress.Streak != 0 {
		t.Errorf("unexpected default: level=%s xp=%d streak=%d", progress.Level, progress.XP, progress.Streak)
	}
	if progress.Badges == nil || progress.CompletedModules == nil || progress.QuizScores == nil || progress.WeakAreas == nil {
		t.Error("default collections must be non-nil")
	}

	stored, err := store.GetProgress(1)
	if err != nil || stored == nil {
		t.Fatalf("default was not persisted: %v", err)
	}
}

func TestInitializeProgressIdempotentSameDay(t *testing.T) {
	tracker, _, _ := newTestTracker(time.Now())

	first := tracker.InitializeProgress(1)
	second := tracker.InitializeProgress(1)

	if second.UserID != first.UserID {
		t.Errorf("progress ID changed on second init: %s vs %s", first.UserID, second.UserID)
	}
	if second.XP != 0 || second.Streak != 0 {
		t.Errorf("same-day re-init changed state: xp=%d streak=%d", second.XP, second.Streak)
	}
}

func TestAddXPWithinLevel(t *testing.T) {
	tracker, _, spy := newTestTracker(time.Now())
	tracker.InitializeProgress(1)

	progress := tracker.AddXP(1, models.XPLesson, models.XPKindLesson, "test")

	if progress.XP != 50 {
		t.Errorf("XP = %d, want 50", progress.XP)
	}
	if progress.Level != models.LevelBeginner {
		t.Errorf("Level = %s, want beginner", progress.Level)
	}
	if len(spy.levelUps) != 0 {
		t.Errorf("unexpected level-up notification")
	}
}

func TestAddXPZeroAmountOnlyTouchesLastActive(t *testing.T) {
	day0 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tracker, store, spy := newTestTracker(day0)

	progress := tracker.DefaultProgress()
	progress.XP = 1200
	progress.Level = models.LevelIntermediate
	if err := store.SaveProgress(1, progress); err != nil {
		t.Fatal(err)
	}

	later := day0.Add(5 * time.Hour)
	tracker.now = func() time.Time { return later }
	updated := tracker.AddXP(1, 0, models.XPKindActivity, "opened a lesson")

	if updated.XP != 1200 {
		t.Errorf("XP = %d, want unchanged 1200", updated.XP)
	}
	if updated.Level != models.LevelIntermediate {
		t.Errorf("Level = %s, want unchanged intermediate", updated.Level)
	}
	if !updated.LastActive.Equal(later) {
		t.Errorf("LastActive = %v, want %v", updated.LastActive, later)
	}
	if len(spy.levelUps) != 0 {
		t.Errorf("zero award emitted a level-up notification")
	}

	stored, err := store.GetProgress(1)
	if err != nil || stored == nil {
		t.Fatalf("progress missing after zero award: %v", err)
	}
	if stored.XP != 1200 || !stored.LastActive.Equal(later) {
		t.Errorf("persisted record: xp=%d lastActive=%v", stored.XP, stored.LastActive)
	}
}

func TestAddXPLevelUpBonus(t *testing.T) {
	tracker, store, spy := newTestTracker(time.Now())
	progress := tracker.DefaultProgress()
	progress.XP = 980
	if err := store.SaveProgress(1, progress); err != nil {
		t.Fatal(err)
	}

	updated := tracker.AddXP(1, models.XPLesson, models.XPKindLesson, "test")

	// 980 + 50 crosses 1000, then +50 bonus
	if updated.XP != 1080 {
		t.Errorf("XP = %d, want 1080", updated.XP)
	}
	if updated.Level != models.LevelIntermediate {
		t.Errorf("Level = %s, want intermediate", updated.Level)
	}
	if len(spy.levelUps) != 1 || spy.levelUps[0] != models.LevelIntermediate {
		t.Errorf("level-up notifications = %v", spy.levelUps)
	}
}

func TestAddXPBonusAppliedOnce(t *testing.T) {
	tracker, _, _ := newTestTracker(time.Now())
	tracker.InitializeProgress(1)

	updated := tracker.AddXP(1, 1000, models.XPKindChallenge, "big award")

	if updated.XP != 1050 {
		t.Errorf("XP = %d, want 1050", updated.XP)
	}
	if updated.Level != models.LevelIntermediate {
		t.Errorf("Level = %s, want intermediate", updated.Level)
	}
}

func TestAddXPLevelMatchesStoredXP(t *testing.T) {
	tracker, _, _ := newTestTracker(time.Now())
	tracker.InitializeProgress(1)

	amounts := []int{200, 950, 75, 2000, 4000, 25}
	for _, amount := range amounts {
		updated := tracker.AddXP(1, amount, models.XPKindActivity, "invariant check")
		if updated.Level != LevelFromXP(updated.XP) {
			t.Fatalf("after +%d: level %s does not match xp %d", amount, updated.Level, updated.XP)
		}
	}
}

func TestUpdateStreakContinues(t *testing.T) {
	day0 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tracker, store, _ := newTestTracker(day0)

	progress := tracker.DefaultProgress()
	progress.Streak = 3
	if err := store.SaveProgress(1, progress); err != nil {
		t.Fatal(err)
	}

	tracker.now = func() time.Time { return day0.Add(25 * time.Hour) }
	updated := tracker.UpdateStreak(1)

	if updated.Streak != 4 {
		t.Errorf("Streak = %d, want 4", updated.Streak)
	}
	if updated.XP != models.XPDailyStreak {
		t.Errorf("XP = %d, want %d for the daily bonus", updated.XP, models.XPDailyStreak)
	}
}

func TestUpdateStreakSameDayUnchanged(t *testing.T) {
	day0 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tracker, store, _ := newTestTracker(day0)

	progress := tracker.DefaultProgress()
	progress.Streak = 3
	if err := store.SaveProgress(1, progress); err != nil {
		t.Fatal(err)
	}

	tracker.now = func() time.Time { return day0.Add(5 * time.Hour) }
	updated := tracker.UpdateStreak(1)
	if updated.Streak != 3 || updated.XP != 0 {
		t.Errorf("same-day update changed state: streak=%d xp=%d", updated.Streak, updated.XP)
	}

	// a second same-day call is equally a no-op
	updated = tracker.UpdateStreak(1)
	if updated.Streak != 3 || updated.XP != 0 {
		t.Errorf("repeated same-day update changed state: streak=%d xp=%d", updated.Streak, updated.XP)
	}
}

func TestUpdateStreakBroken(t *testing.T) {
	day0 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tracker, store, spy := newTestTracker(day0)

	progress := tracker.DefaultProgress()
	progress.Streak = 5
	if err := store.SaveProgress(1, progress); err != nil {
		t.Fatal(err)
	}

	tracker.now = func() time.Time { return day0.Add(3 * 24 * time.Hour) }
	updated := tracker.UpdateStreak(1)

	if updated.Streak != 1 {
		t.Errorf("Streak = %d, want reset to 1", updated.Streak)
	}
	if updated.XP != 0 {
		t.Errorf("broken streak must not pay the daily bonus, xp=%d", updated.XP)
	}
	if len(spy.streaksBroken) != 1 || spy.streaksBroken[0] != 5 {
		t.Errorf("streak-broken notifications = %v", spy.streaksBroken)
	}
}

func TestUpdateStreakWeekBadge(t *testing.T) {
	day0 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tracker, store, _ := newTestTracker(day0)

	progress := tracker.DefaultProgress()
	progress.Streak = 6
	if err := store.SaveProgress(1, progress); err != nil {
		t.Fatal(err)
	}

	tracker.now = func() time.Time { return day0.Add(25 * time.Hour) }
	updated := tracker.UpdateStreak(1)

	if updated.Streak != 7 {
		t.Fatalf("Streak = %d, want 7", updated.Streak)
	}
	if !hasBadge(updated, models.BadgeWeekStreak) {
		t.Errorf("expected %s badge, got %v", models.BadgeWeekStreak, updated.Badges)
	}
}

func TestAwardBadgeDeduplicates(t *testing.T) {
	tracker, _, _ := newTestTracker(time.Now())
	tracker.InitializeProgress(1)

	tracker.AwardBadge(1, models.BadgePerfectQuiz)
	updated := tracker.AwardBadge(1, models.BadgePerfectQuiz)

	count := 0
	for _, b := range updated.Badges {
		if b == models.BadgePerfectQuiz {
			count++
		}
	}
	if count != 1 {
		t.Errorf("badge awarded %d times, want 1", count)
	}
}

func TestCompleteModule(t *testing.T) {
	tracker, _, _ := newTestTracker(time.Now())
	tracker.InitializeProgress(1)

	updated := tracker.CompleteModule(1, "financial-statements")

	if len(updated.CompletedModules) != 1 || updated.CompletedModules[0] != "financial-statements" {
		t.Errorf("CompletedModules = %v", updated.CompletedModules)
	}
	if updated.XP != models.XPLesson {
		t.Errorf("XP = %d, want %d", updated.XP, models.XPLesson)
	}
	if !hasBadge(updated, models.BadgeFirstModule) {
		t.Errorf("expected %s badge, got %v", models.BadgeFirstModule, updated.Badges)
	}
}

func TestCompleteModuleTwiceIsNoOp(t *testing.T) {
	tracker, _, _ := newTestTracker(time.Now())
	tracker.InitializeProgress(1)

	tracker.CompleteModule(1, "financial-statements")
	updated := tracker.CompleteModule(1, "financial-statements")

	if len(updated.CompletedModules) != 1 {
		t.Errorf("CompletedModules = %v, want single entry", updated.CompletedModules)
	}
	if updated.XP != models.XPLesson {
		t.Errorf("XP = %d, second completion must not pay again", updated.XP)
	}
}

func TestRecordTime(t *testing.T) {
	tracker, _, _ := newTestTracker(time.Now())
	tracker.InitializeProgress(1)

	tracker.RecordTime(1, 15)
	updated := tracker.RecordTime(1, 30)
	if updated.TotalTimeSpent != 45 {
		t.Errorf("TotalTimeSpent = %d, want 45", updated.TotalTimeSpent)
	}

	updated = tracker.RecordTime(1, 0)
	if updated.TotalTimeSpent != 45 {
		t.Errorf("zero minutes changed total to %d", updated.TotalTimeSpent)
	}
}

func hasBadge(progress *models.UserProgress, badgeID string) bool {
	for _, b := range progress.Badges {
		if b == badgeID {
			return true
		}
	}
	return false
}
