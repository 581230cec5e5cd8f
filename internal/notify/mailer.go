package notify

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer sends reorder notices to the logistics contact over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewMailer(host string, port int, username, password, from, to string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		to:     to,
	}
}

func (m *Mailer) SendReorderNotice(item string, shortfall int) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("Supply reorder: %s", item))
	msg.SetBody("text/plain", fmt.Sprintf(
		"A reorder has been placed for %q.\nShortfall against reorder threshold: %d units.\n", item, shortfall))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send reorder notice: %w", err)
	}
	return nil
}
