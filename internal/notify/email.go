package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"cab-dispatch/pkg/utils"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type EmailSink struct {
	addr     string
	from     string
	auth     smtp.Auth
	sendMail sendMailFunc
}

func NewEmailSink(cfg utils.EmailConfig) (*EmailSink, error) {
	if cfg.Host == "" || cfg.From == "" {
		return nil, fmt.Errorf("email: %w", ErrDisabled)
	}

	var auth smtp.Auth
	if cfg.User != "" {
		auth = smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)
	}

	return &EmailSink{
		addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		from:     cfg.From,
		auth:     auth,
		sendMail: smtp.SendMail,
	}, nil
}

func (s *EmailSink) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return fmt.Errorf("email: %w", ErrNoRecipient)
	}

	raw := buildMIME(s.from, msg.To, msg.Subject, msg.HTML)
	return runBounded(ctx, func() error {
		return s.sendMail(s.addr, s.auth, s.from, []string{msg.To}, raw)
	})
}

func buildMIME(from, to, subject, html string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(html)
	return []byte(b.String())
}
