package models

import "time"

// Event is the legacy attendance record kept for the old calendar
// screen. New code writes Appointment rows; this entity stays because
// existing data still references it.
type Event struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Date time.Time `gorm:"not null" json:"date"`

	// "scheduled" | "attended" | "missed"
	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
