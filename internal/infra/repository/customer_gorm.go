package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/zaferdrn0/Fzy-sub000/internal/domain/customer"
	"github.com/zaferdrn0/Fzy-sub000/internal/models"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *CustomerGormRepository) GetCustomerByID(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var cust models.Customer
	if err := r.db.WithContext(ctx).First(&cust, id).Error; err != nil {
		return nil, err
	}
	return &cust, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *CustomerGormRepository) ListServicesByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	if len(ids) == 0 {
		return []models.Service{}, nil
	}

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Per-customer collections
// --------------------------------------------------

func (r *CustomerGormRepository) ListPaymentsForCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Payment, error) {

	var payments []models.Payment
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *CustomerGormRepository) ListAppointmentsForCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *CustomerGormRepository) ListSubscriptionsForCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Subscription, error) {

	var subs []models.Subscription
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("customer_id = ?", customerID).
		Order("start_date DESC").
		Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// --------------------------------------------------
// Dashboard windows
// --------------------------------------------------

func (r *CustomerGormRepository) ListUpcomingAppointments(
	ctx context.Context,
	customerID uint,
	from time.Time,
	limit int,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("customer_id = ? AND date >= ?", customerID, from).
		Order("date ASC").
		Limit(limit).
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *CustomerGormRepository) ListRecentPayments(
	ctx context.Context,
	customerID uint,
	limit int,
) ([]models.Payment, error) {

	var payments []models.Payment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("customer_id = ?", customerID).
		Order("date DESC").
		Limit(limit).
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *CustomerGormRepository) ListAppointmentsForSubscription(
	ctx context.Context,
	subscriptionID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("subscription_id = ?", subscriptionID).
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*CustomerGormRepository)(nil)
