package controller

import (
	"log"
	"strings"

	"bethesda_backend/internals/features/contact/dto"
	"bethesda_backend/internals/features/contact/model"
	helper "bethesda_backend/internals/helpers"
	"bethesda_backend/internals/mailer"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	alreadySubscribed = "This email is already subscribed to our newsletter."
	subscribeThanks   = "Thank you for subscribing to our newsletter!"
	unsubscribed      = "You have been unsubscribed from our newsletter."
	subscriberMissing = "Subscriber not found"
)

// POST /api/contact/newsletter
func (ctrl *ContactController) Subscribe(c *fiber.Ctx) error {
	var req dto.NewsletterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonValidationError(c, []string{"Invalid request body"})
	}
	req.Normalize()
	if errs := helper.Validate(&req, dto.NewsletterMessages); len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}
	ctx := c.UserContext()
	now := ctrl.Now().UTC()

	var existing model.NewsletterSubscriberModel
	found, err := ctrl.db.QueryOne(ctx, &existing,
		"SELECT * FROM newsletter_subscribers WHERE email = ?", req.Email)
	if err != nil {
		log.Printf("[ERROR] lookup subscriber: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, helper.GenericErrorMessage)
	}

	token := existing.SubscriberUnsubscribeToken
	switch {
	case found && existing.SubscriberStatus == model.SubscriberStatusSubscribed:
		return helper.JsonError(c, fiber.StatusBadRequest, alreadySubscribed)

	case found:
		if _, err := ctrl.db.Update(ctx,
			"UPDATE newsletter_subscribers SET status = ?, subscribed_at = ?, unsubscribed_at = NULL WHERE id = ?",
			model.SubscriberStatusSubscribed, now, existing.SubscriberID); err != nil {
			log.Printf("[ERROR] resubscribe %d: %v", existing.SubscriberID, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, helper.GenericErrorMessage)
		}

	default:
		row := model.NewsletterSubscriberModel{
			SubscriberEmail:            req.Email,
			SubscriberFirstName:        helper.TrimPtr(req.FirstName),
			SubscriberLastName:         helper.TrimPtr(req.LastName),
			SubscriberStatus:           model.SubscriberStatusSubscribed,
			SubscriberUnsubscribeToken: uuid.New(),
			SubscriberSubscribedAt:     now,
		}
		if err := ctrl.db.Insert(ctx, &row); err != nil {
			if helper.IsUniqueViolation(err) {
				return helper.JsonError(c, fiber.StatusBadRequest, alreadySubscribed)
			}
			log.Printf("[ERROR] insert subscriber: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, helper.GenericErrorMessage)
		}
		token = row.SubscriberUnsubscribeToken
	}

	ctrl.sendWelcome(req.Email, req.FirstName, token)
	return helper.JsonMessage(c, subscribeThanks, nil)
}

func (ctrl *ContactController) sendWelcome(email, firstName string, token uuid.UUID) {
	if ctrl.Mail == nil || ctrl.Compose == nil {
		return
	}
	msg, err := ctrl.Compose.NewsletterWelcome(mailer.WelcomeData{
		Email:          email,
		FirstName:      firstName,
		UnsubscribeURL: ctrl.Compose.UnsubscribeURL(token.String()),
	})
	if err != nil {
		log.Printf("[ERROR] compose welcome mail: %v", err)
		return
	}
	ctrl.Mail.Go("newsletter welcome", msg)
}

// POST /api/contact/newsletter/unsubscribe
func (ctrl *ContactController) UnsubscribeByEmail(c *fiber.Ctx) error {
	var req dto.UnsubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonValidationError(c, []string{"Invalid request body"})
	}
	req.Normalize()
	if errs := helper.Validate(&req, dto.NewsletterMessages); len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}
	return ctrl.unsubscribe(c, "email = ?", req.Email)
}

// GET /api/contact/newsletter/unsubscribe/:token
func (ctrl *ContactController) UnsubscribeByToken(c *fiber.Ctx) error {
	token, err := uuid.Parse(strings.TrimSpace(c.Params("token")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, subscriberMissing)
	}
	return ctrl.unsubscribe(c, "unsubscribe_token = ?", token)
}

// unsubscribe is idempotent: an already unsubscribed row still answers 200.
func (ctrl *ContactController) unsubscribe(c *fiber.Ctx, where string, arg any) error {
	ctx := c.UserContext()

	var sub model.NewsletterSubscriberModel
	found, err := ctrl.db.QueryOne(ctx, &sub, "SELECT * FROM newsletter_subscribers WHERE "+where, arg)
	if err != nil {
		log.Printf("[ERROR] lookup subscriber: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, helper.GenericErrorMessage)
	}
	if !found {
		return helper.JsonError(c, fiber.StatusNotFound, subscriberMissing)
	}

	if sub.SubscriberStatus != model.SubscriberStatusUnsubscribed {
		if _, err := ctrl.db.Update(ctx,
			"UPDATE newsletter_subscribers SET status = ?, unsubscribed_at = ? WHERE id = ?",
			model.SubscriberStatusUnsubscribed, ctrl.Now().UTC(), sub.SubscriberID); err != nil {
			log.Printf("[ERROR] unsubscribe %d: %v", sub.SubscriberID, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, helper.GenericErrorMessage)
		}
	}
	return helper.JsonMessage(c, unsubscribed, nil)
}
