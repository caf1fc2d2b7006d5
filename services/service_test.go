package services

import (
	"testing"

	"canteen-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	// A pooled second connection to :memory: would see a different
	// database entirely.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email string, role models.UserRole) models.User {
	t.Helper()
	u := models.User{Name: name, Email: email, PasswordHash: "x", Role: role}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return u
}

func createMenuItem(t *testing.T, db *gorm.DB, name string, price float64, available bool) models.MenuItem {
	t.Helper()
	m := models.MenuItem{Name: name, Price: price, IsAvailable: available}
	if err := db.Select("Name", "Price", "IsAvailable").Create(&m).Error; err != nil {
		t.Fatalf("create menu item %s: %v", name, err)
	}
	return m
}
