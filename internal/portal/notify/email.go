package notify

import (
	"context"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the SMTP settings for the email notifier.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// EmailNotifier sends notifications as plain-text emails over SMTP.
type EmailNotifier struct {
	from   string
	dialer *gomail.Dialer
}

// NewEmailNotifier constructs an SMTP-backed notifier.
func NewEmailNotifier(cfg SMTPConfig) *EmailNotifier {
	return &EmailNotifier{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// Send delivers the message to the destination email address.
func (n *EmailNotifier) Send(_ context.Context, message Message) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", message.Destination)
	msg.SetHeader("Subject", message.Subject)
	msg.SetBody("text/plain", message.Body)

	return n.dialer.DialAndSend(msg)
}
