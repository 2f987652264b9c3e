package model

import "time"

const DefaultContactSubject = "General Inquiry"

// ContactSubmissionModel is append-only: rows are inserted by the contact form and never updated.
type ContactSubmissionModel struct {
	ContactSubmissionID          uint      `gorm:"column:id;primaryKey;autoIncrement"       json:"id"`
	ContactSubmissionName        string    `gorm:"column:name;type:varchar(255);not null"   json:"name"`
	ContactSubmissionEmail       string    `gorm:"column:email;type:varchar(255);not null;index" json:"email"`
	ContactSubmissionPhone       *string   `gorm:"column:phone;type:varchar(50)"            json:"phone"`
	ContactSubmissionSubject     string    `gorm:"column:subject;type:varchar(255);not null" json:"subject"`
	ContactSubmissionMessage     string    `gorm:"column:message;type:text;not null"        json:"message"`
	ContactSubmissionSubmittedAt time.Time `gorm:"column:submitted_at;not null"             json:"submitted_at"`
}

func (ContactSubmissionModel) TableName() string {
	return "contact_submissions"
}
