package models

import "time"

type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Surname string `gorm:"size:100;not null" json:"surname"`

	// stored lower-cased, uniqueness is case-insensitive
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone string `gorm:"size:20;not null" json:"phone"`

	BirthDate time.Time `json:"birth_date"`
	Weight    float64   `json:"weight"`
	Address   string    `gorm:"size:255" json:"address"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
