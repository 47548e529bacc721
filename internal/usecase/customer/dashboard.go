package customer

import (
	"context"
	"time"

	domain "github.com/zaferdrn0/Fzy-sub000/internal/domain/customer"
	"github.com/zaferdrn0/Fzy-sub000/internal/domain/membership"
	"github.com/zaferdrn0/Fzy-sub000/internal/dto"
	"github.com/zaferdrn0/Fzy-sub000/internal/httperr"
)

const (
	upcomingLimit       = 5
	recentPaymentsLimit = 5
)

type GetDashboard struct {
	repo domain.Repository
	now  func() time.Time
}

func NewGetDashboard(repo domain.Repository) *GetDashboard {
	return &GetDashboard{repo: repo, now: time.Now}
}

// NewGetDashboardAt pins "now" for tests.
func NewGetDashboardAt(repo domain.Repository, now func() time.Time) *GetDashboard {
	return &GetDashboard{repo: repo, now: now}
}

func (uc *GetDashboard) Execute(
	ctx context.Context,
	customerID uint,
) (*dto.CustomerDashboardDTO, error) {

	cust, err := uc.repo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeCustomerNotFound)
	}

	now := uc.now()

	upcoming, err := uc.repo.ListUpcomingAppointments(
		ctx,
		customerID,
		now,
		upcomingLimit,
	)
	if err != nil {
		return nil, err
	}

	subscriptions, err := uc.repo.ListSubscriptionsForCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	enriched := make([]dto.SubscriptionStatusDTO, 0, len(subscriptions))
	for _, sub := range subscriptions {
		linked, err := uc.repo.ListAppointmentsForSubscription(ctx, sub.ID)
		if err != nil {
			return nil, err
		}

		counts := membership.ClassifyAppointments(linked)
		window := membership.Window{
			Start:        sub.StartDate,
			DurationDays: sub.DurationDays,
		}

		enriched = append(enriched, dto.SubscriptionStatusDTO{
			Subscription:     sub,
			EndDate:          window.End(),
			IsActive:         window.Active(now),
			DaysLeft:         window.DaysLeft(now),
			SessionsAttended: counts.Attended,
			SessionsMissed:   counts.Missed,
			SessionsUpcoming: counts.Upcoming,
			Progress:         membership.Progress(counts.Attended, sub.SessionLimit),
		})
	}

	recent, err := uc.repo.ListRecentPayments(ctx, customerID, recentPaymentsLimit)
	if err != nil {
		return nil, err
	}

	return &dto.CustomerDashboardDTO{
		Customer:             *cust,
		Age:                  membership.Age(cust.BirthDate, now),
		UpcomingAppointments: upcoming,
		Subscriptions:        enriched,
		RecentPayments:       recent,
	}, nil
}
