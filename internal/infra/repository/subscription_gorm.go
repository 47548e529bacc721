package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/zaferdrn0/Fzy-sub000/internal/domain/subscription"
	"github.com/zaferdrn0/Fzy-sub000/internal/models"
)

type SubscriptionGormRepository struct {
	db *gorm.DB
}

func NewSubscriptionGormRepository(db *gorm.DB) *SubscriptionGormRepository {
	return &SubscriptionGormRepository{db: db}
}

func (r *SubscriptionGormRepository) GetCustomerByID(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var cust models.Customer
	if err := r.db.WithContext(ctx).First(&cust, id).Error; err != nil {
		return nil, err
	}
	return &cust, nil
}

func (r *SubscriptionGormRepository) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *SubscriptionGormRepository) HasSubscriptionStartingAtOrAfter(
	ctx context.Context,
	customerID uint,
	serviceID uint,
	start time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where(
			"customer_id = ? AND service_id = ? AND start_date >= ?",
			customerID,
			serviceID,
			start,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *SubscriptionGormRepository) CreateSubscription(
	ctx context.Context,
	sub *models.Subscription,
) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

// Compile-time check
var _ domain.Repository = (*SubscriptionGormRepository)(nil)
