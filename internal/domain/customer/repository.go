package customer

import (
	"context"
	"time"

	"github.com/zaferdrn0/Fzy-sub000/internal/models"
)

// Repository is the read surface the customer aggregates are built on.
type Repository interface {
	// -------- Customer --------
	GetCustomerByID(
		ctx context.Context,
		id uint,
	) (*models.Customer, error)

	// -------- Services --------
	ListServicesByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	// -------- Per-customer collections --------
	ListPaymentsForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Payment, error)

	ListAppointmentsForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Appointment, error)

	ListSubscriptionsForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Subscription, error)

	// -------- Dashboard windows --------
	ListUpcomingAppointments(
		ctx context.Context,
		customerID uint,
		from time.Time,
		limit int,
	) ([]models.Appointment, error)

	ListRecentPayments(
		ctx context.Context,
		customerID uint,
		limit int,
	) ([]models.Payment, error)

	ListAppointmentsForSubscription(
		ctx context.Context,
		subscriptionID uint,
	) ([]models.Appointment, error)
}
