package controller

import (
	"log"
	"time"

	database "bethesda_backend/internals/databases"
	"bethesda_backend/internals/features/contact/dto"
	"bethesda_backend/internals/features/contact/model"
	helper "bethesda_backend/internals/helpers"
	"bethesda_backend/internals/mailer"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	contactThanks = "Thank you for your message. We'll get back to you soon!"
)

type ContactController struct {
	DB      *gorm.DB
	db      *database.Adapter
	Mail    *mailer.Dispatcher
	Compose *mailer.Composer
	Now     func() time.Time
}

func NewContactController(db *gorm.DB, mail *mailer.Dispatcher, compose *mailer.Composer) *ContactController {
	return &ContactController{
		DB:      db,
		db:      database.NewAdapter(db),
		Mail:    mail,
		Compose: compose,
		Now:     time.Now,
	}
}

// POST /api/contact
func (ctrl *ContactController) SubmitContact(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonValidationError(c, []string{"Invalid request body"})
	}
	req.Normalize()
	if errs := helper.Validate(&req, dto.ContactMessages); len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}

	subject := req.Subject
	if subject == "" {
		subject = model.DefaultContactSubject
	}
	row := model.ContactSubmissionModel{
		ContactSubmissionName:        req.Name,
		ContactSubmissionEmail:       req.Email,
		ContactSubmissionPhone:       helper.TrimPtr(req.Phone),
		ContactSubmissionSubject:     subject,
		ContactSubmissionMessage:     req.Message,
		ContactSubmissionSubmittedAt: ctrl.Now().UTC(),
	}
	if err := ctrl.db.Insert(c.UserContext(), &row); err != nil {
		log.Printf("[ERROR] save contact submission: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, helper.GenericErrorMessage)
	}

	ctrl.notifyContact(mailer.ContactData{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Subject:     subject,
		Message:     req.Message,
		SubmittedAt: row.ContactSubmissionSubmittedAt,
	})

	return helper.JsonMessage(c, contactThanks, dto.ContactCreatedResponse{ID: row.ContactSubmissionID})
}

// notifyContact queues the admin notification and the visitor confirmation.
func (ctrl *ContactController) notifyContact(d mailer.ContactData) {
	if ctrl.Mail == nil || ctrl.Compose == nil {
		return
	}
	if ctrl.Compose.ContactEmail != "" {
		if msg, err := ctrl.Compose.ContactNotification(d); err != nil {
			log.Printf("[ERROR] compose contact notification: %v", err)
		} else {
			ctrl.Mail.Go("contact notification", msg)
		}
	}
	if msg, err := ctrl.Compose.ContactConfirmation(d); err != nil {
		log.Printf("[ERROR] compose contact confirmation: %v", err)
	} else {
		ctrl.Mail.Go("contact confirmation", msg)
	}
}
