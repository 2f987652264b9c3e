// file: internals/helpers/json_response.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GenericErrorMessage is what clients see for any unhandled failure.
const GenericErrorMessage = "An error occurred. Please try again later."

/* ===============================
   Error helpers (standard shape)
=================================*/

type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// JsonError: generic (non-validation) error. Empty 5xx messages become GenericErrorMessage.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		if status >= 500 {
			message = GenericErrorMessage
		} else {
			message = statusText(status)
		}
	}
	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Message: message,
	})
}

// JsonValidationError: 400 with the list of human readable messages.
func JsonValidationError(c *fiber.Ctx, messages []string) error {
	if len(messages) == 0 {
		messages = []string{"Invalid input"}
	}
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Success: false,
		Errors:  messages,
	})
}

func statusText(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "Bad request"
	case fiber.StatusNotFound:
		return "Not found"
	case fiber.StatusMethodNotAllowed:
		return "Method not allowed"
	case fiber.StatusTooManyRequests:
		return "Too many requests"
	default:
		return "Request failed"
	}
}

/* ===============================
   JSON responses (standard success)
=================================*/

// JsonList: list with pagination (GET /sermons etc.)
func JsonList(c *fiber.Ctx, data any, pagination *Pagination) error {
	body := fiber.Map{
		"success": true,
		"data":    data,
	}
	if pagination != nil {
		body["pagination"] = pagination
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// JsonOK: generic success (GET detail etc.)
func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// JsonMessage: success with a user facing message and optional data.
func JsonMessage(c *fiber.Ctx, message string, data any) error {
	body := fiber.Map{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(fiber.StatusOK).JSON(body)
}
