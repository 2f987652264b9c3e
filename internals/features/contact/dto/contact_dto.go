package dto

import (
	"strings"

	helper "bethesda_backend/internals/helpers"

	"github.com/gofiber/utils"
)

// ContactRequest is POST /api/contact (JSON or form-encoded).
// Limits mirror the contact_submissions column sizes.
type ContactRequest struct {
	Name    string `json:"name"    form:"name"    validate:"required,max=255"`
	Email   string `json:"email"   form:"email"   validate:"required,email,max=255"`
	Phone   string `json:"phone"   form:"phone"   validate:"max=50"`
	Subject string `json:"subject" form:"subject" validate:"max=255"`
	Message string `json:"message" form:"message" validate:"required"`
}

var ContactMessages = map[string]string{
	"Name.max":    "Name must be at most 255 characters",
	"Name":        "Name is required",
	"Email.max":   "Email must be at most 255 characters",
	"Email":       "Valid email is required",
	"Phone.max":   "Phone must be at most 50 characters",
	"Subject.max": "Subject must be at most 255 characters",
	"Message":     "Message is required",
}

// Normalize trims the fields and copies them out of the request buffer,
// which fasthttp reuses once the handler returns.
func (r *ContactRequest) Normalize() {
	r.Name = detach(strings.TrimSpace(r.Name))
	r.Email = detach(helper.NormalizeEmail(r.Email))
	r.Phone = detach(strings.TrimSpace(r.Phone))
	r.Subject = detach(strings.TrimSpace(r.Subject))
	r.Message = detach(strings.TrimSpace(r.Message))
}

// NewsletterRequest is POST /api/contact/newsletter.
type NewsletterRequest struct {
	Email     string `json:"email"     form:"email"     validate:"required,email,max=255"`
	FirstName string `json:"firstName" form:"firstName" validate:"max=100"`
	LastName  string `json:"lastName"  form:"lastName"  validate:"max=100"`
}

var NewsletterMessages = map[string]string{
	"Email":     "Valid email is required",
	"FirstName": "First name is too long",
	"LastName":  "Last name is too long",
}

func (r *NewsletterRequest) Normalize() {
	r.Email = detach(helper.NormalizeEmail(r.Email))
	r.FirstName = detach(strings.TrimSpace(r.FirstName))
	r.LastName = detach(strings.TrimSpace(r.LastName))
}

// UnsubscribeRequest is POST /api/contact/newsletter/unsubscribe.
type UnsubscribeRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

func (r *UnsubscribeRequest) Normalize() {
	r.Email = detach(helper.NormalizeEmail(r.Email))
}

type ContactCreatedResponse struct {
	ID uint `json:"id"`
}

func detach(s string) string {
	if s == "" {
		return ""
	}
	return utils.ImmutableString(s)
}
