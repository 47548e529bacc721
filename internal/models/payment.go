package models

import "time"

// Ödeme kaydı: status her zaman "paid", taksit takibi yok.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// on update at least one of these must stay set
	SubscriptionID *uint `json:"subscription_id"`
	AppointmentID  *uint `json:"appointment_id"`

	Amount float64   `gorm:"not null" json:"amount"`
	Date   time.Time `gorm:"not null" json:"date"`

	Status string `gorm:"size:20;default:'paid'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
