package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	SubscriberStatusSubscribed   = "subscribed"
	SubscriberStatusUnsubscribed = "unsubscribed"
)

type NewsletterSubscriberModel struct {
	SubscriberID               uint       `gorm:"column:id;primaryKey;autoIncrement"                json:"id"`
	SubscriberEmail            string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	SubscriberFirstName        *string    `gorm:"column:first_name;type:varchar(100)"               json:"first_name"`
	SubscriberLastName         *string    `gorm:"column:last_name;type:varchar(100)"                json:"last_name"`
	SubscriberStatus           string     `gorm:"column:status;type:varchar(20);not null;default:'subscribed'" json:"status"`
	SubscriberUnsubscribeToken uuid.UUID  `gorm:"column:unsubscribe_token;type:uuid;not null;uniqueIndex" json:"-"`
	SubscriberSubscribedAt     time.Time  `gorm:"column:subscribed_at;not null"                     json:"subscribed_at"`
	SubscriberUnsubscribedAt   *time.Time `gorm:"column:unsubscribed_at"                            json:"unsubscribed_at,omitempty"`
}

func (NewsletterSubscriberModel) TableName() string {
	return "newsletter_subscribers"
}
