package mailer

import (
	"crypto/tls"
	"fmt"
	"net/smtp"

	mailyak "github.com/domodwyer/mailyak/v3"
)

// SMTP submits mail to a relay. Port 465 uses an implicit TLS session,
// anything else goes through the STARTTLS path. A fresh session is built per
// send; no connection is pooled across requests.
type SMTP struct {
	Host        string
	Port        int
	ImplicitTLS bool
	User        string
	Pass        string
}

func (s *SMTP) Name() string { return "smtp" }

func (s *SMTP) Send(msg Message) error {
	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	auth := smtp.PlainAuth("", s.User, s.Pass, s.Host)

	var mail *mailyak.MailYak
	if s.ImplicitTLS {
		m, err := mailyak.NewWithTLS(addr, auth, &tls.Config{ServerName: s.Host})
		if err != nil {
			return fmt.Errorf("failed to open TLS session to %s: %w", addr, err)
		}
		mail = m
	} else {
		mail = mailyak.New(addr, auth)
	}

	mail.From(msg.From)
	if msg.FromName != "" {
		mail.FromName(msg.FromName)
	}
	mail.To(msg.To)
	mail.Subject(msg.Subject)
	mail.HTML().Set(msg.HTML)
	mail.Plain().Set(msg.Text)

	if err := mail.Send(); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
