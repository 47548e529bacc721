package dto

import (
	"time"

	"github.com/zaferdrn0/Fzy-sub000/internal/models"
)

// SubscriptionStatusDTO is a subscription enriched with the derived
// window and progress fields the dashboard renders.
type SubscriptionStatusDTO struct {
	models.Subscription

	EndDate  time.Time `json:"end_date"`
	IsActive bool      `json:"is_active"`
	DaysLeft int       `json:"days_left"`

	SessionsAttended int     `json:"sessions_attended"`
	SessionsMissed   int     `json:"sessions_missed"`
	SessionsUpcoming int     `json:"sessions_upcoming"`
	Progress         float64 `json:"progress"`
}

type CustomerDashboardDTO struct {
	Customer             models.Customer         `json:"customer"`
	Age                  int                     `json:"age"`
	UpcomingAppointments []models.Appointment    `json:"upcoming_appointments"`
	Subscriptions        []SubscriptionStatusDTO `json:"subscriptions"`
	RecentPayments       []models.Payment        `json:"recent_payments"`
}

type CustomerDetailDTO struct {
	Customer      models.Customer       `json:"customer"`
	Services      []models.Service      `json:"services"`
	Payments      []models.Payment      `json:"payments"`
	Appointments  []models.Appointment  `json:"appointments"`
	Subscriptions []models.Subscription `json:"subscriptions"`
}
