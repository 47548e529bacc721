package subscription

import (
	"context"
	"time"

	"github.com/zaferdrn0/Fzy-sub000/internal/audit"
	domain "github.com/zaferdrn0/Fzy-sub000/internal/domain/subscription"
	"github.com/zaferdrn0/Fzy-sub000/internal/httperr"
	"github.com/zaferdrn0/Fzy-sub000/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateSubscriptionInput struct {
	CustomerID uint
	ServiceID  uint

	DurationDays int
	StartDate    string // "2006-01-02"

	SessionLimit   int
	MakeupSessions int
	Fee            float64

	ActingUserID uint
}

const defaultSessionLimit = 8

// ======================================================
// USE CASE
// ======================================================

type CreateSubscription struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateSubscription(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateSubscription {
	return &CreateSubscription{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateSubscription) Execute(
	ctx context.Context,
	in CreateSubscriptionInput,
) (*models.Subscription, error) {

	// 1. Referanslar
	customer, err := uc.repo.GetCustomerByID(ctx, in.CustomerID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeCustomerNotFound)
	}

	service, err := uc.repo.GetServiceByID(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	// 2. Başlangıç tarihi
	start, err := time.Parse("2006-01-02", in.StartDate)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_start_date")
	}

	if in.DurationDays <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	// 3. Çakışma kontrolü.
	// Only compares start dates (existing start >= requested start),
	// not full interval overlap: a subscription starting before an
	// existing one passes. Kept as-is; see DESIGN.md. The read and
	// the insert below are not bound by a transaction either.
	exists, err := uc.repo.HasSubscriptionStartingAtOrAfter(
		ctx,
		in.CustomerID,
		in.ServiceID,
		start,
	)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness(httperr.CodeOverlappingSubscription)
	}

	// 4. Varsayılanlar
	sessionLimit := in.SessionLimit
	if sessionLimit <= 0 {
		sessionLimit = defaultSessionLimit
	}

	// 5. Kayıt
	sub := &models.Subscription{
		CustomerID:     customer.ID,
		ServiceID:      service.ID,
		DurationDays:   in.DurationDays,
		StartDate:      start,
		SessionLimit:   sessionLimit,
		MakeupSessions: in.MakeupSessions,
		Fee:            in.Fee,
	}

	if err := uc.repo.CreateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	sub.Customer = *customer
	sub.Service = *service

	// 6. Audit
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActingUserID,
		Action:   "subscription_created",
		Entity:   "subscription",
		EntityID: &sub.ID,
	})

	return sub, nil
}
