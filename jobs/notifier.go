package jobs

import (
	"fmt"

	"fin-arcade-api/auth"
	"fin-arcade-api/models"
	"fin-arcade-api/utils"
)

// UserDirectory resolves account IDs to users for addressing notifications.
type UserDirectory interface {
	GetUserByID(id int) (*models.User, error)
}

// EmailNotifier queues gamification event emails. It satisfies the tracker's
// Notifier interface and never blocks the calling request.
type EmailNotifier struct {
	manager *Manager
	users   UserDirectory
	email   *auth.EmailService
}

func NewEmailNotifier(manager *Manager, users UserDirectory, email *auth.EmailService) *EmailNotifier {
	return &EmailNotifier{
		manager: manager,
		users:   users,
		email:   email,
	}
}

func (n *EmailNotifier) LevelUp(userID int, level models.Level, xp int) {
	user, err := n.users.GetUserByID(userID)
	if err != nil {
		utils.LogError("Cannot notify level-up for unknown user %d: %v", userID, err)
		return
	}

	subject, body := n.email.BuildLevelUpEmail(user, level, xp)
	metadata := map[string]string{
		"user_id": fmt.Sprintf("%d", userID),
		"level":   string(level),
	}

	if err := n.manager.QueueEmail(user.Email, subject, body, "level-up", metadata); err != nil {
		utils.LogError("Failed to queue level-up email: %v", err)
	}
}

func (n *EmailNotifier) StreakBroken(userID int, previousStreak int) {
	user, err := n.users.GetUserByID(userID)
	if err != nil {
		utils.LogError("Cannot notify streak-broken for unknown user %d: %v", userID, err)
		return
	}

	subject, body := n.email.BuildStreakBrokenEmail(user, previousStreak)
	metadata := map[string]string{
		"user_id": fmt.Sprintf("%d", userID),
		"streak":  fmt.Sprintf("%d", previousStreak),
	}

	if err := n.manager.QueueEmail(user.Email, subject, body, "streak-broken", metadata); err != nil {
		utils.LogError("Failed to queue streak-broken email: %v", err)
	}
}
