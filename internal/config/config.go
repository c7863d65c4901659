package config

import (
	"os"
	"strconv"
)

// MailConfig is the transport configuration for outbound reservation emails.
// It is read once at startup and injected; nothing reads the environment
// mid-request.
type MailConfig struct {
	Host        string
	Port        int
	ImplicitTLS bool // true iff Port == 465
	User        string
	Pass        string
	Receiver    string // hotel inbox for reservation requests
	SendGridKey string // optional, switches the provider to SendGrid
}

// Ready reports whether the required transport values are all present.
func (c MailConfig) Ready() bool {
	return c.User != "" && c.Pass != "" && c.Receiver != ""
}

// SMSConfig holds the optional Twilio settings for staff notifications.
type SMSConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	NotifyTo   string
}

// Enabled reports whether staff SMS notifications are fully configured.
func (c SMSConfig) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != "" && c.NotifyTo != ""
}

// Config holds all runtime configuration values.
type Config struct {
	Port string
	Mail MailConfig
	SMS  SMSConfig
}

// Load reads configuration from environment variables. Missing mail
// credentials are not fatal here: the dispatcher reports "Email not
// configured" per request instead.
func Load() Config {
	port := smtpPort()
	return Config{
		Port: envOr("PORT", "8080"),
		Mail: MailConfig{
			Host:        envOr("SMTP_HOST", "smtp.gmail.com"),
			Port:        port,
			ImplicitTLS: port == 465,
			User:        os.Getenv("SMTP_USER"),
			Pass:        os.Getenv("SMTP_PASS"),
			Receiver:    os.Getenv("RECEIVER_EMAIL"),
			SendGridKey: os.Getenv("SENDGRID_API_KEY"),
		},
		SMS: SMSConfig{
			AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
			FromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
			NotifyTo:   os.Getenv("NOTIFY_SMS_TO"),
		},
	}
}

func smtpPort() int {
	n, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || n <= 0 {
		return 587
	}
	return n
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
