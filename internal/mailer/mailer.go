// Package mailer sends outbound email through an interchangeable provider:
// SMTP submission by default, SendGrid when an API key is configured.
package mailer

import "samarlodge/internal/config"

// Message represents one email to send.
type Message struct {
	From     string
	FromName string
	To       string
	Subject  string
	HTML     string
	Text     string
}

// Provider sends emails via a specific backend.
type Provider interface {
	Name() string
	Send(msg Message) error
}

// FromConfig picks the provider for the given transport configuration.
func FromConfig(cfg config.MailConfig) Provider {
	if cfg.SendGridKey != "" {
		return &SendGrid{APIKey: cfg.SendGridKey}
	}
	return &SMTP{
		Host:        cfg.Host,
		Port:        cfg.Port,
		ImplicitTLS: cfg.ImplicitTLS,
		User:        cfg.User,
		Pass:        cfg.Pass,
	}
}
