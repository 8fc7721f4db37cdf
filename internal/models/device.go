package models

import "time"

// Device is a household appliance. UserID is set at creation and never
// reassigned; it is the root of the ownership chain for every consumable
// and maintenance task underneath it.
type Device struct {
	ID                     uint       `gorm:"primaryKey" json:"id"`
	UserID                 uint       `gorm:"index;not null" json:"user_id"`
	Name                   string     `gorm:"size:100;not null" json:"name"`
	Model                  string     `gorm:"size:100" json:"model,omitempty"`
	Location               string     `gorm:"size:100" json:"location,omitempty"`
	ImageURL               string     `gorm:"size:500" json:"image_url,omitempty"`
	ManualURL              string     `gorm:"size:500" json:"manual_url,omitempty"`
	ConsumablesURL         string     `gorm:"size:500" json:"consumables_url,omitempty"`
	ReceiptURL             string     `gorm:"size:500" json:"receipt_url,omitempty"`
	PurchaseDate           *time.Time `json:"purchase_date,omitempty"`
	WarrantyExpirationDate *time.Time `json:"warranty_expiration_date,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`

	User        User              `gorm:"foreignKey:UserID" json:"-"`
	Consumables []Consumable      `gorm:"foreignKey:DeviceID" json:"consumables,omitempty"`
	Tasks       []MaintenanceTask `gorm:"foreignKey:DeviceID" json:"tasks,omitempty"`
}
