package mailer

import (
	"context"
	"log"
)

// LogSender writes messages to the log instead of delivering them (development).
type LogSender struct{}

func (LogSender) Send(_ context.Context, msg Message) error {
	log.Printf("[MAIL] to=%s subject=%q bytes=%d", msg.To.Email, msg.Subject, len(msg.HTML))
	return nil
}
