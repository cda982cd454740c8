package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fin-arcade-api/auth"
	"fin-arcade-api/utils"

	"github.com/hibiken/asynq"
)

const (
	TypeSendEmail = "email:send"
)

type Manager struct {
	client *asynq.Client
	server *asynq.Server
	mux    *asynq.ServeMux
}

type EmailPayload struct {
	To       string            `json:"to"`
	Subject  string            `json:"subject"`
	Body     string            `json:"body"`
	Type     string            `json:"type"`     // "level-up", "streak-broken", "notification"
	Metadata map[string]string `json:"metadata"` // Extra data for logging/tracking
}

func NewManager(redisURL string) *Manager {
	addr := strings.TrimPrefix(redisURL, "redis://")
	redisOpt := asynq.RedisClientOpt{
		Addr: addr,
	}

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"default": 3,
			"low":     1,
		},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			utils.LogError("Job failed: type=%s error=%v", task.Type(), err)
		}),
		Logger: &asynqLogger{},
	})

	mux := asynq.NewServeMux()

	return &Manager{
		client: client,
		server: server,
		mux:    mux,
	}
}

func (m *Manager) RegisterHandlers(emailService *auth.EmailService) {
	m.mux.HandleFunc(TypeSendEmail, m.handleSendEmail(emailService))
}

func (m *Manager) Start() error {
	utils.LogStartup("Starting job queue worker...")
	return m.server.Run(m.mux)
}

func (m *Manager) Stop() {
	utils.LogShutdown("Stopping job queue...")
	m.server.Stop()
	m.server.Shutdown()
	m.client.Close()
}

// QueueEmail queues any notification email.
func (m *Manager) QueueEmail(to, subject, body, emailType string, metadata map[string]string) error {
	if metadata == nil {
		metadata = make(map[string]string)
	}

	payload := EmailPayload{
		To:       to,
		Subject:  subject,
		Body:     body,
		Type:     emailType,
		Metadata: metadata,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	task := asynq.NewTask(TypeSendEmail, payloadBytes)

	opts := []asynq.Option{
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.Timeout(60 * time.Second),
	}

	info, err := m.client.Enqueue(task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue email task: %w", err)
	}

	utils.LogInfo("Queued email job: ID=%s type=%s to=%s", info.ID, emailType, to)
	return nil
}

func (m *Manager) handleSendEmail(emailService *auth.EmailService) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload EmailPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to unmarshal email payload: %w", err)
		}

		utils.LogInfo("Processing email job: type=%s to=%s subject=%s", payload.Type, payload.To, payload.Subject)

		if err := emailService.SendEmail(payload.To, payload.Subject, payload.Body); err != nil {
			metadataStr := ""
			for k, v := range payload.Metadata {
				metadataStr += fmt.Sprintf("%s=%s ", k, v)
			}

			return fmt.Errorf("failed to send %s email to %s (metadata: %s): %w",
				payload.Type, payload.To, metadataStr, err)
		}

		utils.LogInfo("Successfully sent %s email to %s", payload.Type, payload.To)
		return nil
	}
}

// asynqLogger routes asynq's internal logging through the shared log tags.
type asynqLogger struct{}

func (l *asynqLogger) Debug(args ...interface{}) {
	utils.LogDebug(fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	utils.LogInfo(fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	utils.LogError(fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	utils.LogError(fmt.Sprint(args...))
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	utils.LogError(fmt.Sprint(args...))
}
