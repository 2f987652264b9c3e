package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"bethesda_backend/internals/configs"
)

var funcs = template.FuncMap{
	// nl2br escapes s and turns line breaks into <br>.
	"nl2br": func(s string) template.HTML {
		escaped := template.HTMLEscapeString(s)
		escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
		return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
	},
}

var templates = template.Must(template.New("mail").Funcs(funcs).Parse(`
{{define "contact_notification"}}<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{if .Phone}}{{.Phone}}{{else}}Not provided{{end}}</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong></p>
<p>{{nl2br .Message}}</p>
<hr>
<p><small>Submitted on: {{.SubmittedAt.Format "Mon, 02 Jan 2006 15:04 MST"}}</small></p>
{{end}}

{{define "contact_confirmation"}}<h2>Thank you for contacting {{.SiteName}}!</h2>
<p>Dear {{.Name}},</p>
<p>We have received your message and will get back to you as soon as possible.</p>
<p><strong>Your Message:</strong></p>
<p>{{nl2br .Message}}</p>
<hr>
<p>Blessings,<br>
{{.SiteName}} Team</p>
{{end}}

{{define "newsletter_welcome"}}<h2>Welcome to Our Newsletter!</h2>
<p>Dear {{if .FirstName}}{{.FirstName}}{{else}}Friend{{end}},</p>
<p>Thank you for subscribing to our newsletter. You'll now receive updates about:</p>
<ul>
  <li>Upcoming events and services</li>
  <li>New sermon series</li>
  <li>Community news and announcements</li>
  <li>Ways to get involved</li>
</ul>
<p>Blessings,<br>
{{.SiteName}} Team</p>
<hr>
<p><small>You can unsubscribe at any time: <a href="{{.UnsubscribeURL}}">unsubscribe</a>.</small></p>
{{end}}
`))

type ContactData struct {
	Name        string
	Email       string
	Phone       string
	Subject     string
	Message     string
	SubmittedAt time.Time
}

type WelcomeData struct {
	Email          string
	FirstName      string
	UnsubscribeURL string
}

// Composer turns form data into ready-to-send messages for one site.
type Composer struct {
	From         Address
	ContactEmail string
	SiteName     string
	SiteURL      string
}

func NewComposer(cfg *configs.AppConfig) *Composer {
	return &Composer{
		From:         Address{Email: cfg.FromEmail, Name: cfg.FromName},
		ContactEmail: cfg.ContactEmail,
		SiteName:     cfg.SiteName,
		SiteURL:      strings.TrimRight(cfg.SiteURL, "/"),
	}
}

// UnsubscribeURL is the public link carried by newsletter mail.
func (c *Composer) UnsubscribeURL(token string) string {
	return c.SiteURL + "/api/contact/newsletter/unsubscribe/" + token
}

// ContactNotification is the admin copy of a contact form submission.
func (c *Composer) ContactNotification(d ContactData) (Message, error) {
	html, err := render("contact_notification", d)
	if err != nil {
		return Message{}, err
	}
	return Message{
		From:    c.From,
		To:      Address{Email: c.ContactEmail},
		ReplyTo: d.Email,
		Subject: "New Contact Form Submission: " + d.Subject,
		HTML:    html,
	}, nil
}

// ContactConfirmation acknowledges a submission to the sender.
func (c *Composer) ContactConfirmation(d ContactData) (Message, error) {
	html, err := render("contact_confirmation", struct {
		ContactData
		SiteName string
	}{d, c.SiteName})
	if err != nil {
		return Message{}, err
	}
	return Message{
		From:    c.From,
		To:      Address{Email: d.Email, Name: d.Name},
		Subject: "Thank you for contacting us",
		HTML:    html,
	}, nil
}

func (c *Composer) NewsletterWelcome(d WelcomeData) (Message, error) {
	html, err := render("newsletter_welcome", struct {
		WelcomeData
		SiteName string
	}{d, c.SiteName})
	if err != nil {
		return Message{}, err
	}
	return Message{
		From:    c.From,
		To:      Address{Email: d.Email, Name: d.FirstName},
		Subject: fmt.Sprintf("Welcome to %s Newsletter", c.SiteName),
		HTML:    html,
	}, nil
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
