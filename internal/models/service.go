package models

import "time"

// Sabit hizmet kataloğu: Pilates, Fizyoterapi, Masaj.
// Seeded at migration time, one row per type.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Type        string `gorm:"size:50;uniqueIndex;not null" json:"type"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	ServicePilates     = "Pilates"
	ServiceFizyoterapi = "Fizyoterapi"
	ServiceMasaj       = "Masaj"
)
