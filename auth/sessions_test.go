package auth

import (
	"testing"
	"time"

	"fin-arcade-api/models"
)

func testUser(id int, username string) *models.User {
	return &models.User{ID: id, Username: username, Email: username + "@example.com", IsActive: true}
}

func TestSessionLifecycle(t *testing.T) {
	store := NewSessionStore()

	session := store.CreateSession(testUser(1, "taylor"))
	if session.ID == "" {
		t.Fatal("session has no ID")
	}
	if session.UserID != 1 || session.Username != "taylor" {
		t.Errorf("unexpected session: %+v", session)
	}
	if !session.ExpiresAt.After(session.CreatedAt) {
		t.Error("session expires before it is created")
	}

	got, ok := store.GetSession(session.ID)
	if !ok || got.ID != session.ID {
		t.Fatalf("GetSession = %+v, %v", got, ok)
	}

	store.DeleteSession(session.ID)
	if _, ok := store.GetSession(session.ID); ok {
		t.Error("deleted session still retrievable")
	}
}

func TestGetSessionUnknownID(t *testing.T) {
	store := NewSessionStore()
	if _, ok := store.GetSession("does-not-exist"); ok {
		t.Error("unknown session ID resolved")
	}
}

func TestGetSessionExpired(t *testing.T) {
	store := NewSessionStore()

	session := store.CreateSession(testUser(1, "taylor"))
	session.ExpiresAt = time.Now().Add(-time.Minute)

	if _, ok := store.GetSession(session.ID); ok {
		t.Error("expired session resolved")
	}
}

func TestDeleteUserSessions(t *testing.T) {
	store := NewSessionStore()

	first := store.CreateSession(testUser(1, "taylor"))
	second := store.CreateSession(testUser(1, "taylor"))
	other := store.CreateSession(testUser(2, "jordan"))

	store.DeleteUserSessions(1)

	if _, ok := store.GetSession(first.ID); ok {
		t.Error("user 1 session survived")
	}
	if _, ok := store.GetSession(second.ID); ok {
		t.Error("user 1 session survived")
	}
	if _, ok := store.GetSession(other.ID); !ok {
		t.Error("user 2 session was deleted")
	}
}

func TestSessionIDsUnique(t *testing.T) {
	store := NewSessionStore()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		session := store.CreateSession(testUser(1, "taylor"))
		if seen[session.ID] {
			t.Fatalf("duplicate session ID after %d sessions", i)
		}
		seen[session.ID] = true
	}
}
