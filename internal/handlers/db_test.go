package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zaferdrn0/Fzy-sub000/internal/models"
)

// newTestDB gives each test its own in-memory database with the
// entity schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// a second pooled connection to :memory: would see its own empty
	// database, so keep the pool at one
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Service{},
		&models.Subscription{},
		&models.Appointment{},
		&models.Payment{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func init() {
	gin.SetMode(gin.TestMode)
}
