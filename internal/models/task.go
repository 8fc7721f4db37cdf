package models

import "time"

// MaintenanceTask is a recurring obligation scoped to one device.
//
// LastCompleted, IsCompleted, CompletedBy and CompletedByUsername are
// written together by the complete operation and by nothing else.
// CompletedByUsername is a snapshot taken at completion time; renaming
// the user later does not rewrite history.
type MaintenanceTask struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	DeviceID            uint       `gorm:"index;not null" json:"device_id"`
	Name                string     `gorm:"size:100;not null" json:"name"`
	Description         string     `gorm:"size:500" json:"description,omitempty"`
	IntervalDays        int        `gorm:"not null" json:"interval_days"`
	LastCompleted       *time.Time `json:"last_completed,omitempty"`
	IsCompleted         bool       `gorm:"default:false" json:"is_completed"`
	CompletedBy         *uint      `json:"completed_by,omitempty"`
	CompletedByUsername string     `gorm:"size:60" json:"completed_by_username,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`

	Device Device `gorm:"foreignKey:DeviceID" json:"-"`
}
