package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/zaferdrn0/Fzy-sub000/internal/config"
	"github.com/zaferdrn0/Fzy-sub000/internal/models"
)

const (
	connectAttempts = 5
	connectDelay    = 3 * time.Second
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	var db *gorm.DB
	var err error

	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err = gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
			PrepareStmt: true,
		})
		if err == nil {
			break
		}
		log.Warn("database connection failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", connectAttempts),
			zap.Error(err),
		)
		if attempt < connectAttempts {
			time.Sleep(connectDelay)
		}
	}
	if err != nil {
		log.Fatal("giving up connecting to database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Customer{},
		&models.Service{},
		&models.Subscription{},
		&models.Appointment{},
		&models.Payment{},
		&models.Event{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	seedServices(db, log)

	return db
}

// seedServices sabit kataloğu garanti eder: one row per service type.
func seedServices(db *gorm.DB, log *zap.Logger) {
	catalog := []models.Service{
		{Type: models.ServicePilates, Description: "Reformer ve mat pilates seansları"},
		{Type: models.ServiceFizyoterapi, Description: "Fizyoterapi ve rehabilitasyon seansları"},
		{Type: models.ServiceMasaj, Description: "Klasik ve medikal masaj seansları"},
	}

	for _, svc := range catalog {
		var count int64
		db.Model(&models.Service{}).Where("type = ?", svc.Type).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&svc).Error; err != nil {
			log.Warn("failed to seed service", zap.String("type", svc.Type), zap.Error(err))
		}
	}
}
