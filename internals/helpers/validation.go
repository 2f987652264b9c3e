package helper

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/unicode/norm"
)

var validate = validator.New()

// Validate runs struct tag validation and converts failures into user messages.
// messages is keyed by "<Field>.<tag>" first and "<Field>" second.
func Validate(s any, messages map[string]string) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []string{"Invalid input"}
	}

	out := make([]string, 0, len(ve))
	seen := make(map[string]bool, len(ve))
	for _, fe := range ve {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg, ok = messages[fe.Field()]
		}
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		if !seen[msg] {
			seen[msg] = true
			out = append(out, msg)
		}
	}
	return out
}

// NormalizeEmail trims, NFC-normalizes and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(email)))
}

// TrimPtr returns nil for blank strings so optional columns store NULL.
func TrimPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ParseID reads a positive integer route param. ok is false for anything malformed.
func ParseID(c *fiber.Ctx, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
