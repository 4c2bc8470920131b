// Package mail implements the outbound email port over plain SMTP.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// Config captures SMTP connection credentials.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// SMTPMailer sends messages through an authenticated SMTP relay.
type SMTPMailer struct {
	cfg  Config
	auth smtp.Auth
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &SMTPMailer{
		cfg:  cfg,
		auth: smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host),
	}
}

// Send delivers a single plain-text message. The context is consulted
// before dialing; smtp.SendMail itself does not support cancellation.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := buildMessage(m.cfg.From, to, subject, body)
	addr := m.cfg.Host + ":" + m.cfg.Port

	if err := smtp.SendMail(addr, m.auth, m.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// buildMessage assembles an RFC 5322 message. Header values are stripped of
// CR/LF to prevent header injection from payload-supplied fields.
func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + sanitizeHeader(from) + "\r\n")
	b.WriteString("To: " + sanitizeHeader(to) + "\r\n")
	b.WriteString("Subject: " + sanitizeHeader(subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
