package services

import (
	"errors"
	"fmt"
	"helpdesk-server/repositories"

	gomail "gopkg.in/gomail.v2"
)

// Mailer sends mail through the stored SMTP configuration. It reads the
// settings on every send so no restart is needed after an SMTP update.
type Mailer struct {
	SettingsRepo repositories.SettingsRepository
}

func NewMailer(settingsRepo repositories.SettingsRepository) *Mailer {
	return &Mailer{SettingsRepo: settingsRepo}
}

// SendTest delivers a short test message to the given address and returns
// any delivery error verbatim for display in the admin panel.
func (m *Mailer) SendTest(to string) error {
	if to == "" {
		return errors.New("recipient address is required")
	}
	cfg, err := m.SettingsRepo.GetSmtpConfig()
	if err != nil {
		return err
	}
	if cfg.Host == "" {
		return errors.New("SMTP host is not configured")
	}

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "HelpDesk SMTP test")
	msg.SetBody("text/plain", "This is a test message from your HelpDesk SMTP configuration.")

	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	dialer.SSL = cfg.UseTLS && cfg.Port == 465

	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("SMTP delivery failed: %w", err)
	}
	return nil
}
