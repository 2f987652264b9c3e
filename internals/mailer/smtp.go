package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"bethesda_backend/internals/configs"

	"gopkg.in/gomail.v2"
)

// defaultSMTPTimeout bounds a send whose context carries no deadline.
const defaultSMTPTimeout = 30 * time.Second

type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	ssl      bool
	tls      *tls.Config
}

func NewSMTPSender(cfg *configs.AppConfig) *SMTPSender {
	return &SMTPSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPassword,
		ssl:      cfg.SMTPSecure,
		tls:      &tls.Config{ServerName: cfg.SMTPHost, MinVersion: tls.VersionTLS12},
	}
}

// Send delivers msg over one SMTP session. The context deadline covers the
// dial and every read and write; cancelling ctx aborts a stalled server.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultSMTPTimeout)
		defer cancel()
	}

	c, stop, err := s.dial(ctx)
	if err != nil {
		return err
	}
	defer stop()
	defer c.Close()

	if err := gomail.Send(sessionSender(c), buildMessage(msg)); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("smtp send: %w", ctxErr)
		}
		return fmt.Errorf("smtp send: %w", err)
	}
	return c.Quit()
}

func (s *SMTPSender) dial(ctx context.Context) (*smtp.Client, func() bool, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(s.host, strconv.Itoa(s.port)))
	if err != nil {
		return nil, nil, fmt.Errorf("smtp dial: %w", err)
	}
	deadline, _ := ctx.Deadline()
	if err := conn.SetDeadline(deadline); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("smtp deadline: %w", err)
	}
	// an already expired deadline unblocks any pending read or write
	stop := context.AfterFunc(ctx, func() { _ = conn.SetDeadline(time.Unix(1, 0)) })

	if s.ssl {
		conn = tls.Client(conn, s.tls)
	}
	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		stop()
		conn.Close()
		return nil, nil, fmt.Errorf("smtp greeting: %w", err)
	}

	if !s.ssl {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err := c.StartTLS(s.tls); err != nil {
				stop()
				c.Close()
				return nil, nil, fmt.Errorf("smtp starttls: %w", err)
			}
		}
	}
	if s.username != "" {
		if ok, mechs := c.Extension("AUTH"); ok {
			if err := c.Auth(s.auth(mechs)); err != nil {
				stop()
				c.Close()
				return nil, nil, fmt.Errorf("smtp auth: %w", err)
			}
		}
	}
	return c, stop, nil
}

func (s *SMTPSender) auth(mechs string) smtp.Auth {
	if strings.Contains(mechs, "CRAM-MD5") {
		return smtp.CRAMMD5Auth(s.username, s.password)
	}
	return smtp.PlainAuth("", s.username, s.password, s.host)
}

func sessionSender(c *smtp.Client) gomail.SendFunc {
	return func(from string, to []string, m io.WriterTo) error {
		if err := c.Mail(from); err != nil {
			return err
		}
		for _, addr := range to {
			if err := c.Rcpt(addr); err != nil {
				return err
			}
		}
		w, err := c.Data()
		if err != nil {
			return err
		}
		if _, err := m.WriteTo(w); err != nil {
			w.Close()
			return err
		}
		return w.Close()
	}
}

func buildMessage(msg Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", msg.From.Email, msg.From.Name)
	m.SetAddressHeader("To", msg.To.Email, msg.To.Name)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)
	return m
}
