package customer

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	domain "github.com/zaferdrn0/Fzy-sub000/internal/domain/appointment"
	"github.com/zaferdrn0/Fzy-sub000/internal/httperr"
	"github.com/zaferdrn0/Fzy-sub000/internal/models"
)

type fakeRepo struct {
	customers     map[uint]*models.Customer
	services      map[uint]models.Service
	payments      []models.Payment
	appointments  []models.Appointment
	subscriptions []models.Subscription
}

func (r *fakeRepo) GetCustomerByID(_ context.Context, id uint) (*models.Customer, error) {
	if c, ok := r.customers[id]; ok {
		return c, nil
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) ListServicesByIDs(_ context.Context, ids []uint) ([]models.Service, error) {
	var out []models.Service
	for _, id := range ids {
		if s, ok := r.services[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListPaymentsForCustomer(_ context.Context, customerID uint) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range r.payments {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForCustomer(_ context.Context, customerID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.CustomerID == customerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListSubscriptionsForCustomer(_ context.Context, customerID uint) ([]models.Subscription, error) {
	var out []models.Subscription
	for _, s := range r.subscriptions {
		if s.CustomerID == customerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListUpcomingAppointments(
	_ context.Context,
	customerID uint,
	from time.Time,
	limit int,
) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.CustomerID == customerID && !a.Date.Before(from) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeRepo) ListRecentPayments(_ context.Context, customerID uint, limit int) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range r.payments {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForSubscription(_ context.Context, subscriptionID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.SubscriptionID != nil && *a.SubscriptionID == subscriptionID {
			out = append(out, a)
		}
	}
	return out, nil
}

var testNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func ptr(v uint) *uint { return &v }

func newDashboardFixture() *fakeRepo {
	subID := uint(7)

	appointments := []models.Appointment{
		// past, must not appear in upcoming
		{ID: 1, CustomerID: 1, Date: testNow.Add(-48 * time.Hour), Status: string(domain.StatusAttended), SubscriptionID: ptr(subID)},
		{ID: 2, CustomerID: 1, Date: testNow.Add(-24 * time.Hour), Status: string(domain.StatusMissed), SubscriptionID: ptr(subID)},
	}
	// seven future ones, inserted out of order
	for i, offset := range []int{96, 24, 168, 48, 120, 72, 144} {
		appointments = append(appointments, models.Appointment{
			ID:         uint(10 + i),
			CustomerID: 1,
			Date:       testNow.Add(time.Duration(offset) * time.Hour),
			Status:     string(domain.StatusScheduled),
		})
	}

	payments := make([]models.Payment, 0, 7)
	for i := 0; i < 7; i++ {
		payments = append(payments, models.Payment{
			ID:         uint(20 + i),
			CustomerID: 1,
			Amount:     100,
			Date:       testNow.Add(-time.Duration(i*24) * time.Hour),
		})
	}

	return &fakeRepo{
		customers: map[uint]*models.Customer{
			1: {ID: 1, Name: "Ayşe", Surname: "Kaya", BirthDate: time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)},
		},
		appointments: appointments,
		payments:     payments,
		subscriptions: []models.Subscription{
			{
				ID:           subID,
				CustomerID:   1,
				StartDate:    testNow.Add(-10 * 24 * time.Hour),
				DurationDays: 30,
				SessionLimit: 10,
			},
		},
	}
}

func TestGetDashboard_NotFound(t *testing.T) {
	uc := NewGetDashboardAt(newDashboardFixture(), func() time.Time { return testNow })

	_, err := uc.Execute(context.Background(), 99)
	if !httperr.IsBusiness(err, httperr.CodeCustomerNotFound) {
		t.Errorf("err = %v, want customer_not_found", err)
	}
}

func TestGetDashboard_UpcomingAppointments(t *testing.T) {
	uc := NewGetDashboardAt(newDashboardFixture(), func() time.Time { return testNow })

	dash, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(dash.UpcomingAppointments) != 5 {
		t.Fatalf("got %d upcoming appointments, want 5", len(dash.UpcomingAppointments))
	}
	for i, ap := range dash.UpcomingAppointments {
		if ap.Date.Before(testNow) {
			t.Errorf("appointment %d is in the past: %v", i, ap.Date)
		}
		if i > 0 && ap.Date.Before(dash.UpcomingAppointments[i-1].Date) {
			t.Errorf("appointments not in ascending date order at index %d", i)
		}
	}
}

func TestGetDashboard_SubscriptionEnrichment(t *testing.T) {
	uc := NewGetDashboardAt(newDashboardFixture(), func() time.Time { return testNow })

	dash, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(dash.Subscriptions) != 1 {
		t.Fatalf("got %d subscriptions, want 1", len(dash.Subscriptions))
	}

	sub := dash.Subscriptions[0]
	if !sub.IsActive {
		t.Error("subscription should be active 10 days into a 30-day window")
	}
	if sub.DaysLeft != 20 {
		t.Errorf("DaysLeft = %d, want 20", sub.DaysLeft)
	}
	if sub.SessionsAttended != 1 || sub.SessionsMissed != 1 {
		t.Errorf("attendance counts = %d/%d, want 1/1", sub.SessionsAttended, sub.SessionsMissed)
	}
	if sub.Progress != 10 {
		t.Errorf("Progress = %v, want 10 (1 of 10 sessions)", sub.Progress)
	}
}

func TestGetDashboard_RecentPayments(t *testing.T) {
	uc := NewGetDashboardAt(newDashboardFixture(), func() time.Time { return testNow })

	dash, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(dash.RecentPayments) != 5 {
		t.Fatalf("got %d recent payments, want 5", len(dash.RecentPayments))
	}
	for i := 1; i < len(dash.RecentPayments); i++ {
		if dash.RecentPayments[i].Date.After(dash.RecentPayments[i-1].Date) {
			t.Errorf("payments not in descending date order at index %d", i)
		}
	}
}

func TestGetDashboard_Age(t *testing.T) {
	uc := NewGetDashboardAt(newDashboardFixture(), func() time.Time { return testNow })

	dash, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if dash.Age != 35 {
		t.Errorf("Age = %d, want 35", dash.Age)
	}
}

func TestGetDetail_ServiceUnion(t *testing.T) {
	repo := newDashboardFixture()
	repo.services = map[uint]models.Service{
		1: {ID: 1, Type: models.ServicePilates},
		2: {ID: 2, Type: models.ServiceFizyoterapi},
		3: {ID: 3, Type: models.ServiceMasaj},
	}
	repo.payments[0].ServiceID = 1
	repo.appointments[0].ServiceID = 2
	repo.subscriptions[0].ServiceID = 2 // duplicate across collections

	uc := NewGetDetail(repo)
	detail, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(detail.Services) != 2 {
		t.Errorf("got %d services, want 2 (union without duplicates)", len(detail.Services))
	}
}

func TestGetDetail_NotFound(t *testing.T) {
	uc := NewGetDetail(newDashboardFixture())

	_, err := uc.Execute(context.Background(), 42)
	if !httperr.IsBusiness(err, httperr.CodeCustomerNotFound) {
		t.Errorf("err = %v, want customer_not_found", err)
	}
}
