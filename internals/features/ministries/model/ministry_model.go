package model

import "time"

const (
	MinistryStatusActive   = "active"
	MinistryStatusInactive = "inactive"
)

type MinistryModel struct {
	MinistryID          uint      `gorm:"column:id;primaryKey;autoIncrement"                           json:"id"`
	MinistryName        string    `gorm:"column:name;type:varchar(255);not null"                       json:"name"`
	MinistryDescription string    `gorm:"column:description;type:text"                                 json:"description"`
	MinistryStatus      string    `gorm:"column:status;type:varchar(20);not null;default:'active';index" json:"status"`
	MinistryCreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"                             json:"created_at"`
	MinistryUpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"                             json:"updated_at"`
}

func (MinistryModel) TableName() string {
	return "ministries"
}
