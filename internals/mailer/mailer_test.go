package mailer

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"bethesda_backend/internals/configs"

	"github.com/bytedance/sonic"
)

type recordingSender struct {
	mu   sync.Mutex
	msgs []Message
	err  error
}

func (r *recordingSender) Send(_ context.Context, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
	return r.err
}

func TestDispatcherDeliversInBackground(t *testing.T) {
	rec := &recordingSender{}
	d := NewDispatcher(rec, time.Second)

	d.Go("one", Message{To: Address{Email: "a@example.com"}})
	d.Go("two", Message{To: Address{Email: "b@example.com"}})
	d.Go("skipped", Message{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := d.Wait(ctx); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if len(rec.msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(rec.msgs))
	}
}

func TestDispatcherSwallowsErrors(t *testing.T) {
	rec := &recordingSender{err: errors.New("smtp down")}
	d := NewDispatcher(rec, time.Second)
	d.Go("failing", Message{To: Address{Email: "a@example.com"}})
	if err := d.Wait(context.Background()); err != nil {
		t.Fatalf("wait: %v", err)
	}
}

type blockingSender struct{ release chan struct{} }

func (b blockingSender) Send(ctx context.Context, _ Message) error {
	<-b.release
	return nil
}

func TestDispatcherWaitHonoursContext(t *testing.T) {
	b := blockingSender{release: make(chan struct{})}
	defer close(b.release)
	d := NewDispatcher(b, time.Second)
	d.Go("slow", Message{To: Address{Email: "a@example.com"}})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := d.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestMailChannelsSender(t *testing.T) {
	var got mcPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected content type %q", r.Header.Get("Content-Type"))
		}
		raw, _ := io.ReadAll(r.Body)
		if err := sonic.Unmarshal(raw, &got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s := NewMailChannelsSender(srv.URL, time.Second)
	err := s.Send(context.Background(), Message{
		From:    Address{Email: "noreply@church.org", Name: "Church"},
		To:      Address{Email: "member@example.com"},
		Subject: "Hello",
		HTML:    "<p>hi</p>",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(got.Personalizations) != 1 || got.Personalizations[0].To[0].Email != "member@example.com" {
		t.Fatalf("unexpected personalizations %+v", got.Personalizations)
	}
	if got.From.Name != "Church" || got.Subject != "Hello" || got.Content[0].Type != "text/html" {
		t.Fatalf("unexpected payload %+v", got)
	}
}

func TestMailChannelsSenderRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad sender", http.StatusBadRequest)
	}))
	defer srv.Close()

	err := NewMailChannelsSender(srv.URL, time.Second).Send(context.Background(), Message{To: Address{Email: "x@example.com"}})
	if err == nil || !strings.Contains(err.Error(), "400") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestNewPicksDriver(t *testing.T) {
	tests := []struct {
		driver  string
		host    string
		wantErr bool
	}{
		{"log", "", false},
		{"", "", false},
		{"mailchannels", "", false},
		{"smtp", "smtp.example.com", false},
		{"smtp", "", true},
		{"carrier-pigeon", "", true},
	}
	for _, tt := range tests {
		_, err := New(&configs.AppConfig{MailDriver: tt.driver, SMTPHost: tt.host, SMTPPort: 587})
		if (err != nil) != tt.wantErr {
			t.Fatalf("driver %q: err=%v wantErr=%v", tt.driver, err, tt.wantErr)
		}
	}
}

func TestComposerEscapesUserInput(t *testing.T) {
	c := &Composer{
		From:         Address{Email: "noreply@church.org", Name: "Church"},
		ContactEmail: "office@church.org",
		SiteName:     "Bethesda Bible Chapel",
		SiteURL:      "https://church.org",
	}
	d := ContactData{
		Name:        "<script>alert(1)</script>",
		Email:       "visitor@example.com",
		Subject:     "General Inquiry",
		Message:     "line one\nline <two>",
		SubmittedAt: time.Date(2025, 1, 2, 3, 4, 0, 0, time.UTC),
	}

	msg, err := c.ContactNotification(d)
	if err != nil {
		t.Fatalf("notification: %v", err)
	}
	if msg.To.Email != "office@church.org" || msg.ReplyTo != "visitor@example.com" {
		t.Fatalf("unexpected addressing %+v", msg)
	}
	if msg.Subject != "New Contact Form Submission: General Inquiry" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	if strings.Contains(msg.HTML, "<script>") {
		t.Fatal("name was not escaped")
	}
	if !strings.Contains(msg.HTML, "line one<br>line &lt;two&gt;") {
		t.Fatalf("message not rendered with line breaks: %s", msg.HTML)
	}
	if !strings.Contains(msg.HTML, "Not provided") {
		t.Fatal("missing phone placeholder")
	}

	conf, err := c.ContactConfirmation(d)
	if err != nil {
		t.Fatalf("confirmation: %v", err)
	}
	if conf.To.Email != "visitor@example.com" || !strings.Contains(conf.HTML, "Thank you for contacting Bethesda Bible Chapel!") {
		t.Fatalf("unexpected confirmation %+v", conf)
	}
}

func TestComposerWelcome(t *testing.T) {
	c := &Composer{SiteName: "Bethesda Bible Chapel", SiteURL: "https://church.org"}
	url := c.UnsubscribeURL("abc-123")
	if url != "https://church.org/api/contact/newsletter/unsubscribe/abc-123" {
		t.Fatalf("unexpected unsubscribe url %q", url)
	}

	msg, err := c.NewsletterWelcome(WelcomeData{Email: "new@example.com", UnsubscribeURL: url})
	if err != nil {
		t.Fatalf("welcome: %v", err)
	}
	if msg.Subject != "Welcome to Bethesda Bible Chapel Newsletter" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	if !strings.Contains(msg.HTML, "Dear Friend,") || !strings.Contains(msg.HTML, url) {
		t.Fatalf("unexpected body %s", msg.HTML)
	}
}

func listenLocal(t *testing.T) (net.Listener, *configs.AppConfig) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })
	addr := ln.Addr().(*net.TCPAddr)
	return ln, &configs.AppConfig{SMTPHost: "127.0.0.1", SMTPPort: addr.Port}
}

func TestSMTPSenderGivesUpOnSilentServer(t *testing.T) {
	ln, cfg := listenLocal(t)
	go func() {
		var held []net.Conn
		defer func() {
			for _, c := range held {
				c.Close()
			}
		}()
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			// accept and never greet
			held = append(held, conn)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := NewSMTPSender(cfg).Send(ctx, Message{
		From: Address{Email: "site@example.com"},
		To:   Address{Email: "visitor@example.com"},
	})
	if err == nil {
		t.Fatal("expected error from silent server")
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Fatalf("send blocked for %v", elapsed)
	}
}

func TestSMTPSenderDelivers(t *testing.T) {
	ln, cfg := listenLocal(t)
	got := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		tp := textproto.NewConn(conn)
		_ = tp.PrintfLine("220 localhost ready")
		var rcpt []string
		for {
			line, err := tp.ReadLine()
			if err != nil {
				return
			}
			cmd := strings.ToUpper(line)
			switch {
			case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
				_ = tp.PrintfLine("250 localhost")
			case strings.HasPrefix(cmd, "MAIL FROM"):
				_ = tp.PrintfLine("250 ok")
			case strings.HasPrefix(cmd, "RCPT TO"):
				rcpt = append(rcpt, line)
				_ = tp.PrintfLine("250 ok")
			case cmd == "DATA":
				_ = tp.PrintfLine("354 go ahead")
				body, err := tp.ReadDotBytes()
				if err != nil {
					return
				}
				got <- strings.Join(rcpt, "\n") + "\n" + string(body)
				_ = tp.PrintfLine("250 queued")
			case cmd == "QUIT":
				_ = tp.PrintfLine("221 bye")
				return
			default:
				_ = tp.PrintfLine("502 unsupported")
			}
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := NewSMTPSender(cfg).Send(ctx, Message{
		From:    Address{Email: "site@example.com", Name: "Bethesda"},
		To:      Address{Email: "visitor@example.com", Name: "Visitor"},
		ReplyTo: "office@example.com",
		Subject: "Hello",
		HTML:    "<p>Welcome</p>",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	select {
	case data := <-got:
		for _, want := range []string{"<visitor@example.com>", "Subject: Hello", "Reply-To: office@example.com", "Welcome"} {
			if !strings.Contains(data, want) {
				t.Errorf("delivered mail missing %q:\n%s", want, data)
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server never received DATA")
	}
}
