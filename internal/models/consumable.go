package models

import "time"

type Consumable struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	DeviceID        uint      `gorm:"index;not null" json:"device_id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	Description     string    `gorm:"size:500" json:"description,omitempty"`
	StorageLocation string    `gorm:"size:100" json:"storage_location,omitempty"`
	URL             string    `gorm:"size:500" json:"url,omitempty"`
	Cost            float64   `gorm:"default:0" json:"cost"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Device Device `gorm:"foreignKey:DeviceID" json:"-"`
}
