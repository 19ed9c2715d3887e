package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/nafirj-2103/nafi-rj-portfolio/internal/config"
)

// Sender dispatches transactional email.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
	Enabled() bool
}

// NewMailer returns an SMTP-backed sender, or a logged no-op when
// credentials are missing so the intake path keeps working without
// mail configuration.
func NewMailer(cfg config.MailConfig, logger *zap.Logger) Sender {
	if cfg.Username == "" || cfg.Password == "" {
		logger.Warn("email credentials not configured; notifications disabled")
		return &disabledMailer{logger: logger}
	}
	return &smtpMailer{cfg: cfg, logger: logger}
}

type smtpMailer struct {
	cfg    config.MailConfig
	logger *zap.Logger
}

func (m *smtpMailer) Enabled() bool { return true }

// Send delivers a single HTML email. smtp.SendMail has no context
// support; a hung provider call stalls only the issuing request.
func (m *smtpMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.SMTPHost)

	from := m.cfg.Username
	if m.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.Username)
	}

	message := fmt.Sprintf("From: %s\r\n", from) +
		fmt.Sprintf("To: %s\r\n", to) +
		fmt.Sprintf("Subject: %s\r\n", subject) +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" +
		htmlBody + "\r\n"

	addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)
	if err := smtp.SendMail(addr, auth, m.cfg.Username, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

type disabledMailer struct {
	logger *zap.Logger
}

func (m *disabledMailer) Enabled() bool { return false }

func (m *disabledMailer) Send(_ context.Context, to, subject, _ string) error {
	m.logger.Info("email sending disabled; skipping",
		zap.String("to", to),
		zap.String("subject", subject))
	return nil
}
