package subscription

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/zaferdrn0/Fzy-sub000/internal/httperr"
	"github.com/zaferdrn0/Fzy-sub000/internal/models"
)

type fakeRepo struct {
	customers map[uint]*models.Customer
	services  map[uint]*models.Service

	// start dates of existing subscriptions per customer+service
	existing map[[2]uint][]time.Time

	created []*models.Subscription
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		customers: map[uint]*models.Customer{
			1: {ID: 1, Name: "Ayşe", Surname: "Kaya", Email: "ayse@example.com"},
		},
		services: map[uint]*models.Service{
			2: {ID: 2, Type: models.ServicePilates},
		},
		existing: map[[2]uint][]time.Time{},
	}
}

func (r *fakeRepo) GetCustomerByID(_ context.Context, id uint) (*models.Customer, error) {
	if c, ok := r.customers[id]; ok {
		return c, nil
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) GetServiceByID(_ context.Context, id uint) (*models.Service, error) {
	if s, ok := r.services[id]; ok {
		return s, nil
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) HasSubscriptionStartingAtOrAfter(
	_ context.Context,
	customerID, serviceID uint,
	start time.Time,
) (bool, error) {
	for _, existing := range r.existing[[2]uint{customerID, serviceID}] {
		if !existing.Before(start) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) CreateSubscription(_ context.Context, sub *models.Subscription) error {
	sub.ID = uint(len(r.created) + 1)
	r.created = append(r.created, sub)
	return nil
}

func validInput() CreateSubscriptionInput {
	return CreateSubscriptionInput{
		CustomerID:   1,
		ServiceID:    2,
		DurationDays: 30,
		StartDate:    "2025-03-01",
		SessionLimit: 10,
		Fee:          500,
	}
}

func TestCreateSubscription_Success(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateSubscription(repo, nil)

	sub, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("created %d subscriptions, want 1", len(repo.created))
	}
	if sub.DurationDays != 30 || sub.SessionLimit != 10 || sub.Fee != 500 {
		t.Errorf("fields not copied: %+v", sub)
	}
	if sub.Service.Type != models.ServicePilates {
		t.Errorf("service not populated: %+v", sub.Service)
	}
	want := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !sub.StartDate.Equal(want) {
		t.Errorf("StartDate = %v, want %v", sub.StartDate, want)
	}
}

func TestCreateSubscription_DefaultSessionLimit(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateSubscription(repo, nil)

	in := validInput()
	in.SessionLimit = 0

	sub, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if sub.SessionLimit != 8 {
		t.Errorf("SessionLimit = %d, want default 8", sub.SessionLimit)
	}
}

func TestCreateSubscription_Errors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*CreateSubscriptionInput)
		wantCode string
	}{
		{
			"unknown customer",
			func(in *CreateSubscriptionInput) { in.CustomerID = 99 },
			httperr.CodeCustomerNotFound,
		},
		{
			"unknown service",
			func(in *CreateSubscriptionInput) { in.ServiceID = 99 },
			httperr.CodeServiceNotFound,
		},
		{
			"bad start date",
			func(in *CreateSubscriptionInput) { in.StartDate = "01.03.2025" },
			"invalid_start_date",
		},
		{
			"non-positive duration",
			func(in *CreateSubscriptionInput) { in.DurationDays = 0 },
			"invalid_duration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			uc := NewCreateSubscription(repo, nil)

			in := validInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			if !httperr.IsBusiness(err, tt.wantCode) {
				t.Errorf("err = %v, want business code %q", err, tt.wantCode)
			}
			if len(repo.created) != 0 {
				t.Errorf("created %d subscriptions, want 0", len(repo.created))
			}
		})
	}
}

func TestCreateSubscription_OverlapConflict(t *testing.T) {
	repo := newFakeRepo()
	repo.existing[[2]uint{1, 2}] = []time.Time{
		time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
	}
	uc := NewCreateSubscription(repo, nil)

	_, err := uc.Execute(context.Background(), validInput())
	if !httperr.IsBusiness(err, httperr.CodeOverlappingSubscription) {
		t.Errorf("err = %v, want overlap conflict", err)
	}
	if len(repo.created) != 0 {
		t.Errorf("created %d subscriptions, want 0", len(repo.created))
	}
}

// The guard only compares start dates: requesting a window that
// starts before an existing subscription ends, but after its start
// date, is NOT detected. This pins the known-weak behavior.
func TestCreateSubscription_EarlierStartPassesWeakCheck(t *testing.T) {
	repo := newFakeRepo()
	repo.existing[[2]uint{1, 2}] = []time.Time{
		time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
	}
	uc := NewCreateSubscription(repo, nil)

	// Feb 1 + any realistic duration still covers Mar 1, but the
	// existing start (Feb 1) < requested start (Mar 1), so no conflict.
	sub, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if sub == nil || len(repo.created) != 1 {
		t.Error("expected subscription to be created despite interval overlap")
	}
}
