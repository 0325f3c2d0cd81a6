// Package smtp delivers digest mail through a plain SMTP relay.
package smtp

import (
	"context"
	"fmt"

	"esq_report_bot/internal/domain/mail"

	gomail "gopkg.in/gomail.v2"
)

// Sender implements mail.Sender over an unauthenticated relay, the usual
// setup for an internal smarthost.
type Sender struct {
	dialer *gomail.Dialer
}

func NewSender(host string, port int) *Sender {
	return &Sender{dialer: gomail.NewDialer(host, port, "", "")}
}

// Send delivers one HTML-bodied message. Each call dials the relay anew;
// delivery volume here is a handful of messages per day.
func (s *Sender) Send(ctx context.Context, msg mail.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending mail to %s: %w", msg.To, err)
	}
	return nil
}
