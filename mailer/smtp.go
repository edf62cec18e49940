package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPConfig holds the relay connection settings.
type SMTPConfig struct {
	Host     string
	Port     int
	From     string
	Password string
}

// Mailer delivers composed emails through an SMTP relay.
type Mailer struct {
	cfg SMTPConfig
}

func NewMailer(cfg SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SplitRecipients parses a comma-separated address list, trimming whitespace
// around each entry. Empty entries are kept; a bad address list fails at
// delivery time rather than being silently narrowed here.
func SplitRecipients(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Send delivers html to every recipient. The visible To header names only
// the sender while the envelope carries the real recipient list, so
// recipients never see each other's addresses. Any failure propagates; a
// missed daily email must fail the run loudly.
func (m *Mailer) Send(_ context.Context, subject, html string, recipients []string) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var auth smtp.Auth
	if m.cfg.Password != "" {
		auth = smtp.PlainAuth("", m.cfg.From, m.cfg.Password, m.cfg.Host)
	}

	msg := m.buildMessage(subject, html)
	if err := smtp.SendMail(addr, auth, m.cfg.From, recipients, msg); err != nil {
		return fmt.Errorf("send mail via %s: %w", addr, err)
	}
	return nil
}

func (m *Mailer) buildMessage(subject, html string) []byte {
	var sb strings.Builder
	sb.WriteString("From: " + m.cfg.From + "\r\n")
	sb.WriteString("To: " + m.cfg.From + "\r\n")
	sb.WriteString("Subject: " + subject + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(html)
	return []byte(sb.String())
}
