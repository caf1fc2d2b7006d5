package config

import (
	"errors"
	"log"
	"os"

	"canteen-api/models"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	DatabasePath  string
	JWTSecret     []byte
	Port          string
	AdminEmail    string
	AdminPassword string
}

func Load() *Config {
	return &Config{
		DatabasePath:  getEnv("DATABASE_PATH", "canteen.db"),
		JWTSecret:     []byte(getEnv("JWT_SECRET", "canteen_super_secret_2024")),
		Port:          getEnv("PORT", "8080"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// OpenDB connects to the sqlite database and migrates the schema. The
// returned handle is passed to every service; there is no package-level
// DB singleton.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// SeedAdmin creates the bootstrap admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. It is a no-op when the variables are unset or the
// account already exists, so it is safe to run at every startup.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("Admin credentials not set, skipping admin seed")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("email = ?", cfg.AdminEmail).First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.User{
			Name:         "Admin",
			Email:        cfg.AdminEmail,
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		log.Printf("Created default admin user: %s", cfg.AdminEmail)
		return nil
	})
}
