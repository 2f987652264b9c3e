package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	SermonStatusPublished = "published"
	SermonStatusDraft     = "draft"
)

type SermonModel struct {
	SermonID                 uint           `gorm:"column:id;primaryKey;autoIncrement"                  json:"id"`
	SermonTitle              string         `gorm:"column:title;type:varchar(255);not null"             json:"title"`
	SermonSpeaker            string         `gorm:"column:speaker;type:varchar(255);not null;index"     json:"speaker"`
	SermonDate               datatypes.Date `gorm:"column:date;not null;index"                          json:"date"`
	SermonDescription        string         `gorm:"column:description;type:text"                        json:"description"`
	SermonAudioURL           string         `gorm:"column:audio_url;type:text"                          json:"audio_url"`
	SermonVideoURL           string         `gorm:"column:video_url;type:text"                          json:"video_url"`
	SermonNotesURL           string         `gorm:"column:notes_url;type:text"                          json:"notes_url"`
	SermonImageURL           string         `gorm:"column:image_url;type:text"                          json:"image_url"`
	SermonScriptureReference string         `gorm:"column:scripture_reference;type:varchar(255)"        json:"scripture_reference"`
	SermonSeries             *string        `gorm:"column:series;type:varchar(255);index"               json:"series"`
	SermonViews              int64          `gorm:"column:views;not null;default:0"                     json:"views"`
	SermonStatus             string         `gorm:"column:status;type:varchar(20);not null;default:'draft';index" json:"status"`

	SermonCreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	SermonUpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SermonModel) TableName() string {
	return "sermons"
}
