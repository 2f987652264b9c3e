package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	EventStatusPublished = "published"
	EventStatusDraft     = "draft"
)

type EventModel struct {
	EventID                   uint            `gorm:"column:id;primaryKey;autoIncrement"                json:"id"`
	EventTitle                string          `gorm:"column:title;type:varchar(255);not null"           json:"title"`
	EventDescription          string          `gorm:"column:description;type:text"                      json:"description"`
	EventDate                 datatypes.Date  `gorm:"column:date;not null;index"                        json:"date"`
	EventStartTime            *datatypes.Time `gorm:"column:start_time"                                 json:"start_time"`
	EventEndTime              *datatypes.Time `gorm:"column:end_time"                                   json:"end_time"`
	EventLocation             string          `gorm:"column:location;type:varchar(255)"                 json:"location"`
	EventImageURL             string          `gorm:"column:image_url;type:text"                        json:"image_url"`
	EventCategory             string          `gorm:"column:category;type:varchar(100);index"           json:"category"`
	EventRegistrationRequired bool            `gorm:"column:registration_required;not null;default:false" json:"registration_required"`
	EventMaxAttendees         *int            `gorm:"column:max_attendees"                              json:"max_attendees"`
	EventStatus               string          `gorm:"column:status;type:varchar(20);not null;default:'draft';index" json:"status"`

	EventCreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	EventUpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (EventModel) TableName() string {
	return "events"
}
