package models

// EmailConfig holds SMTP configuration for outgoing notifications.
type EmailConfig struct {
	SMTPHost    string
	SMTPPort    int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string
}
