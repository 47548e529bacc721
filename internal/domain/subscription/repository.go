package subscription

import (
	"context"
	"time"

	"github.com/zaferdrn0/Fzy-sub000/internal/models"
)

type Repository interface {
	GetCustomerByID(
		ctx context.Context,
		id uint,
	) (*models.Customer, error)

	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// HasSubscriptionStartingAtOrAfter is the overlap guard's read
	// step: reports whether the customer already has a subscription
	// for the service whose start date is >= the given date.
	HasSubscriptionStartingAtOrAfter(
		ctx context.Context,
		customerID uint,
		serviceID uint,
		start time.Time,
	) (bool, error)

	CreateSubscription(
		ctx context.Context,
		sub *models.Subscription,
	) error
}
