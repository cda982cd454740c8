package storage

import (
	"path/filepath"
	"testing"

	"fin-arcade-api/models"
)

func newTestDB(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreAvailable(t *testing.T) {
	store := newTestDB(t)
	if !store.Available() {
		t.Error("open store must report available")
	}
}

func TestSQLiteProgressRoundTrip(t *testing.T) {
	store := newTestDB(t)

	got, err := store.GetProgress(1)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("expected nil for unknown user, got %+v", got)
	}

	want := sampleProgress()
	if err := store.SaveProgress(1, want); err != nil {
		t.Fatal(err)
	}

	got, err = store.GetProgress(1)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("progress missing after save")
	}
	if got.UserID != want.UserID || got.XP != want.XP || got.Level != want.Level {
		t.Errorf("round trip changed data: %+v", got)
	}
	if got.QuizScores["fs-quiz-1"] != 75 {
		t.Errorf("QuizScores = %v", got.QuizScores)
	}
}

func TestSQLiteProgressOverwrite(t *testing.T) {
	store := newTestDB(t)

	progress := sampleProgress()
	if err := store.SaveProgress(1, progress); err != nil {
		t.Fatal(err)
	}

	progress.XP = 2000
	progress.Streak = 5
	if err := store.SaveProgress(1, progress); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetProgress(1)
	if err != nil {
		t.Fatal(err)
	}
	if got.XP != 2000 || got.Streak != 5 {
		t.Errorf("overwrite lost: xp=%d streak=%d", got.XP, got.Streak)
	}
}

func TestSQLiteMalformedProgressTreatedAsAbsent(t *testing.T) {
	store := newTestDB(t)

	_, err := store.Exec(`
        INSERT INTO user_state (user_id, key, value) VALUES (?, ?, ?)
    `, 1, KeyProgress, "{not valid json")
	if err != nil {
		t.Fatal(err)
	}

	got, err := store.GetProgress(1)
	if err != nil {
		t.Fatalf("malformed state must not error: %v", err)
	}
	if got != nil {
		t.Errorf("malformed state must read as absent, got %+v", got)
	}
}

func TestSQLiteQuizResults(t *testing.T) {
	store := newTestDB(t)

	if err := store.SaveQuizResult(1, "fs-quiz-1", models.QuizResult{QuizID: "fs-quiz-1", Score: 50}); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveQuizResult(1, "fs-quiz-1", models.QuizResult{QuizID: "fs-quiz-1", Score: 100}); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveQuizResult(1, "cf-quiz-1", models.QuizResult{QuizID: "cf-quiz-1", Score: 75}); err != nil {
		t.Fatal(err)
	}

	results, err := store.GetQuizResults(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results["fs-quiz-1"].Score != 100 {
		t.Errorf("re-submission did not overwrite: %v", results["fs-quiz-1"])
	}

	other, err := store.GetQuizResults(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(other) != 0 {
		t.Errorf("user 2 sees user 1's results: %v", other)
	}
}

func TestSQLiteSettings(t *testing.T) {
	store := newTestDB(t)

	if err := store.SaveSettings(1, map[string]interface{}{"theme": "dark"}); err != nil {
		t.Fatal(err)
	}
	got, err := store.GetSettings(1)
	if err != nil {
		t.Fatal(err)
	}
	if got["theme"] != "dark" {
		t.Errorf("settings = %v", got)
	}
}

func TestSQLiteUsers(t *testing.T) {
	store := newTestDB(t)

	user, err := store.CreateUser(models.UserRequest{
		Username: "taylor",
		Email:    "taylor@example.com",
		Password: "s3cretpw",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.ID == 0 || user.Username != "taylor" || !user.IsActive {
		t.Errorf("unexpected user: %+v", user)
	}

	byName, err := store.GetUserByUsername("taylor")
	if err != nil {
		t.Fatal(err)
	}
	if byName.ID != user.ID {
		t.Errorf("GetUserByUsername returned ID %d, want %d", byName.ID, user.ID)
	}

	if _, err := store.AuthenticateUser("taylor", "s3cretpw"); err != nil {
		t.Errorf("valid credentials rejected: %v", err)
	}
	if _, err := store.AuthenticateUser("taylor", "wrongpw"); err == nil {
		t.Error("wrong password accepted")
	}
	if _, err := store.AuthenticateUser("nobody", "s3cretpw"); err == nil {
		t.Error("unknown user accepted")
	}

	if _, err := store.CreateUser(models.UserRequest{
		Username: "taylor",
		Email:    "other@example.com",
		Password: "s3cretpw",
	}); err == nil {
		t.Error("duplicate username accepted")
	}
}

func TestSQLiteAllProgress(t *testing.T) {
	store := newTestDB(t)

	first := sampleProgress()
	if err := store.SaveProgress(1, first); err != nil {
		t.Fatal(err)
	}

	second := sampleProgress()
	second.UserID = "p-2"
	second.XP = 3500
	if err := store.SaveProgress(2, second); err != nil {
		t.Fatal(err)
	}

	all, err := store.AllProgress()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d records, want 2", len(all))
	}
	if all[1].XP != 1200 || all[2].XP != 3500 {
		t.Errorf("AllProgress mismatch: %+v", all)
	}
}
