package mailer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

// MailChannelsSender posts to the MailChannels transactional API.
type MailChannelsSender struct {
	URL    string
	Client *http.Client
}

func NewMailChannelsSender(url string, timeout time.Duration) *MailChannelsSender {
	return &MailChannelsSender{URL: url, Client: &http.Client{Timeout: timeout}}
}

type mcAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type mcPersonalization struct {
	To []mcAddress `json:"to"`
}

type mcContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type mcPayload struct {
	Personalizations []mcPersonalization `json:"personalizations"`
	From             mcAddress           `json:"from"`
	ReplyTo          *mcAddress          `json:"reply_to,omitempty"`
	Subject          string              `json:"subject"`
	Content          []mcContent         `json:"content"`
}

func (s *MailChannelsSender) Send(ctx context.Context, msg Message) error {
	payload := mcPayload{
		Personalizations: []mcPersonalization{{To: []mcAddress{{Email: msg.To.Email, Name: msg.To.Name}}}},
		From:             mcAddress{Email: msg.From.Email, Name: msg.From.Name},
		Subject:          msg.Subject,
		Content:          []mcContent{{Type: "text/html", Value: msg.HTML}},
	}
	if msg.ReplyTo != "" {
		payload.ReplyTo = &mcAddress{Email: msg.ReplyTo}
	}

	body, err := sonic.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode mailchannels payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build mailchannels request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("mailchannels request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mailchannels: status %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}
	return nil
}
