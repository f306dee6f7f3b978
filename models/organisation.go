package models

import (
	"time"
)

// Organisation is a registered marketplace participant. Latitude and
// longitude are required for distance scoring by the matching worker.
type Organisation struct {
	OrgID       uint      `json:"org_id" gorm:"column:org_id;primaryKey;autoIncrement"`
	OrgName     string    `json:"org_name" gorm:"not null"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	Latitude    float64   `json:"latitude" gorm:"not null"`
	Longitude   float64   `json:"longitude" gorm:"not null"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	IsSuspended bool      `json:"is_suspended" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Organisation) TableName() string {
	return "organisation"
}
