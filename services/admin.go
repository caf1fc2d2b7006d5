package services

import (
	"errors"

	"canteen-api/apperr"
	"canteen-api/models"

	"gorm.io/gorm"
)

type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// ListAllOrders returns every order across all users, newest first.
func (s *AdminService) ListAllOrders() ([]models.Order, *apperr.Error) {
	var orders []models.Order
	err := s.db.Preload("Items.MenuItem").
		Order("order_date desc").
		Find(&orders).Error
	if err != nil {
		return nil, apperr.Internal("Failed to load orders", err)
	}
	return orders, nil
}

// SetOrderStatus overwrites an order's status unconditionally; any
// valid status may follow any other.
func (s *AdminService) SetOrderStatus(orderID uint, status models.OrderStatus) (*models.Order, *apperr.Error) {
	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Order not found")
		}
		return nil, apperr.Internal("Failed to load order", err)
	}

	if status == "" {
		return nil, apperr.Validation("Missing status field")
	}
	if !models.ValidOrderStatus(status) {
		return nil, apperr.Validation("Invalid status. Must be one of: Awaiting Approval, Confirmed, Completed, Cancelled")
	}

	if err := s.db.Model(&order).Update("status", status).Error; err != nil {
		return nil, apperr.Internal("Failed to update order", err)
	}

	if err := s.db.Preload("Items.MenuItem").First(&order, orderID).Error; err != nil {
		return nil, apperr.Internal("Failed to load order", err)
	}
	return &order, nil
}

func (s *AdminService) ListUsers() ([]models.User, *apperr.Error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, apperr.Internal("Failed to load users", err)
	}
	return users, nil
}

// SetUserRole changes a user's role. Demoting the last remaining admin
// is refused so the system always keeps at least one admin.
func (s *AdminService) SetUserRole(userID uint, role models.UserRole) (*models.User, *apperr.Error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal("Failed to load user", err)
	}

	if role != models.RoleCustomer && role != models.RoleAdmin {
		return nil, apperr.Validation("Invalid role specified")
	}

	if user.Role == models.RoleAdmin && role == models.RoleCustomer {
		var adminCount int64
		if err := s.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount).Error; err != nil {
			return nil, apperr.Internal("Failed to count admins", err)
		}
		if adminCount <= 1 {
			return nil, apperr.Forbidden("Cannot demote the last admin.")
		}
	}

	if err := s.db.Model(&user).Update("role", role).Error; err != nil {
		return nil, apperr.Internal("Failed to update user", err)
	}
	return &user, nil
}
