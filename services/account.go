package services

import (
	"errors"

	"canteen-api/apperr"
	"canteen-api/middleware"
	"canteen-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AccountService struct {
	db        *gorm.DB
	jwtSecret []byte
}

func NewAccountService(db *gorm.DB, jwtSecret []byte) *AccountService {
	return &AccountService{db: db, jwtSecret: jwtSecret}
}

func (s *AccountService) Register(name, email, password string) *apperr.Error {
	if name == "" || email == "" || password == "" {
		return apperr.Validation("Missing required fields")
	}

	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return apperr.Conflict("Email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Internal("Failed to create user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Internal("Failed to hash password", err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleCustomer,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return apperr.Internal("Failed to create user", err)
	}
	return nil
}

// Login verifies credentials and issues a signed token. Unknown email
// and wrong password produce the same generic error.
func (s *AccountService) Login(email, password string) (string, *apperr.Error) {
	if email == "" || password == "" {
		return "", apperr.Validation("Missing email or password")
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", apperr.Unauthorized("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperr.Unauthorized("Invalid credentials")
	}

	token, err := middleware.GenerateToken(&user, s.jwtSecret)
	if err != nil {
		return "", apperr.Internal("Failed to generate token", err)
	}
	return token, nil
}

func (s *AccountService) Profile(userID uint) (*models.User, *apperr.Error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal("Failed to load user", err)
	}
	return &user, nil
}
