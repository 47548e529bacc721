package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// nil when the appointment is not part of a subscription
	SubscriptionID *uint `json:"subscription_id"`

	Date time.Time `gorm:"not null" json:"date"`

	// "İleri Tarihli" | "Geldi" | "Gelmedi"
	Status string `gorm:"size:20;default:'İleri Tarihli'" json:"status"`

	Notes  string  `gorm:"size:255" json:"notes"`
	Fee    float64 `gorm:"default:0" json:"fee"`
	IsPaid bool    `gorm:"default:false" json:"is_paid"`

	// service-specific detail blocks
	DoctorReport   string `gorm:"type:text" json:"doctor_report"`
	MassageDetails string `gorm:"type:text" json:"massage_details"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
