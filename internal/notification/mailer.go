package notification

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	internal "github.com/tradingwalla/backend/internal"
)

// Mailer wraps the SMTP dialer. A nil Mailer is valid and drops every
// message, which lets deployments run without credentials.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	admin  string
}

func NewMailer(cfg internal.EmailConfig) *Mailer {
	if !cfg.Enabled() {
		return nil
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		admin:  cfg.AdminEmail,
	}
}

func (m *Mailer) Send(to, subject, htmlBody string) error {
	if m == nil {
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

func (m *Mailer) SendToAdmin(subject, htmlBody string) error {
	if m == nil || m.admin == "" {
		return nil
	}
	return m.Send(m.admin, subject, htmlBody)
}
