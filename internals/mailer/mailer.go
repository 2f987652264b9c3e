// Package mailer delivers the site's transactional email (contact notifications,
// confirmations, newsletter welcomes) through SMTP, MailChannels or the log.
package mailer

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"bethesda_backend/internals/configs"
)

type Address struct {
	Email string
	Name  string
}

type Message struct {
	From    Address
	To      Address
	ReplyTo string
	Subject string
	HTML    string
}

// Sender delivers one message synchronously.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New picks the driver named by MAIL_DRIVER.
func New(cfg *configs.AppConfig) (Sender, error) {
	switch strings.ToLower(cfg.MailDriver) {
	case "smtp":
		if cfg.SMTPHost == "" {
			return nil, fmt.Errorf("mailer: SMTP_HOST is required for the smtp driver")
		}
		return NewSMTPSender(cfg), nil
	case "mailchannels":
		return NewMailChannelsSender(cfg.MailChannelsURL, cfg.MailTimeout), nil
	case "log", "":
		return LogSender{}, nil
	default:
		return nil, fmt.Errorf("mailer: unsupported MAIL_DRIVER %q", cfg.MailDriver)
	}
}

/* ===============================
   Fire-and-forget dispatcher
=================================*/

// Dispatcher sends messages in background goroutines. Failures are logged only.
type Dispatcher struct {
	sender  Sender
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDispatcher(sender Sender, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Dispatcher{sender: sender, timeout: timeout}
}

// Go queues msg and returns immediately. label names the message in logs.
func (d *Dispatcher) Go(label string, msg Message) {
	if msg.To.Email == "" {
		log.Printf("[WARN] mailer: %s skipped, no recipient", label)
		return
	}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[ERROR] mailer: %s panicked: %v", label, r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if err := d.sender.Send(ctx, msg); err != nil {
			log.Printf("[ERROR] mailer: sending %s to %s: %v", label, msg.To.Email, err)
			return
		}
		log.Printf("[INFO] mailer: %s sent to %s", label, msg.To.Email)
	}()
}

// Wait blocks until every queued message finished or ctx is done.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
