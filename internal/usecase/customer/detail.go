package customer

import (
	"context"

	domain "github.com/zaferdrn0/Fzy-sub000/internal/domain/customer"
	"github.com/zaferdrn0/Fzy-sub000/internal/dto"
	"github.com/zaferdrn0/Fzy-sub000/internal/httperr"
)

type GetDetail struct {
	repo domain.Repository
}

func NewGetDetail(repo domain.Repository) *GetDetail {
	return &GetDetail{repo: repo}
}

// Execute assembles the customer detail view: the customer plus every
// service the customer's payments, appointments and subscriptions
// reference, and the three collections in full.
func (uc *GetDetail) Execute(
	ctx context.Context,
	customerID uint,
) (*dto.CustomerDetailDTO, error) {

	cust, err := uc.repo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeCustomerNotFound)
	}

	payments, err := uc.repo.ListPaymentsForCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAppointmentsForCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	subscriptions, err := uc.repo.ListSubscriptionsForCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	// union of service ids across the three collections
	seen := map[uint]bool{}
	var serviceIDs []uint
	collect := func(id uint) {
		if id != 0 && !seen[id] {
			seen[id] = true
			serviceIDs = append(serviceIDs, id)
		}
	}
	for _, p := range payments {
		collect(p.ServiceID)
	}
	for _, a := range appointments {
		collect(a.ServiceID)
	}
	for _, s := range subscriptions {
		collect(s.ServiceID)
	}

	services, err := uc.repo.ListServicesByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}

	return &dto.CustomerDetailDTO{
		Customer:      *cust,
		Services:      services,
		Payments:      payments,
		Appointments:  appointments,
		Subscriptions: subscriptions,
	}, nil
}
