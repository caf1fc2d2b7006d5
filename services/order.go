package services

import (
	"errors"
	"fmt"
	"time"

	"canteen-api/apperr"
	"canteen-api/models"

	"gorm.io/gorm"
)

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// OrderLine is one requested order row before validation.
type OrderLine struct {
	MenuItemID uint
	Quantity   int
}

// Place validates the requested lines and writes the order and its
// items in a single transaction. Any invalid line aborts the whole
// call with nothing persisted.
//
// The daily order id is count-of-today's-orders+1, read inside the
// transaction. Two concurrent placements can still observe the same
// count and share a daily id; that duplicate numbering is benign and
// intentionally not closed here.
func (s *OrderService) Place(userID uint, lines []OrderLine) (*models.Order, *apperr.Error) {
	if len(lines) == 0 {
		return nil, apperr.Validation("Invalid or empty order data provided")
	}

	var orderID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

		var countToday int64
		if err := tx.Model(&models.Order{}).Where("order_date >= ?", todayStart).Count(&countToday).Error; err != nil {
			return err
		}

		var total float64
		resolved := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			if line.Quantity <= 0 {
				return apperr.Validation(fmt.Sprintf("Item with id %d is invalid or unavailable", line.MenuItemID))
			}
			var item models.MenuItem
			if err := tx.First(&item, line.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.Validation(fmt.Sprintf("Item with id %d is invalid or unavailable", line.MenuItemID))
				}
				return err
			}
			if !item.IsAvailable {
				return apperr.Validation(fmt.Sprintf("Item with id %d is invalid or unavailable", line.MenuItemID))
			}
			total += item.Price * float64(line.Quantity)
			resolved = append(resolved, models.OrderItem{
				MenuItemID: item.ID,
				Quantity:   line.Quantity,
			})
		}

		order := models.Order{
			DailyOrderID: int(countToday) + 1,
			UserID:       userID,
			TotalAmount:  total,
			OrderDate:    now,
			Status:       models.StatusAwaitingApproval,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range resolved {
			resolved[i].OrderID = order.ID
			if err := tx.Create(&resolved[i]).Error; err != nil {
				return err
			}
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) {
			return nil, ae
		}
		return nil, apperr.Internal("Failed to place order", err)
	}

	var order models.Order
	if err := s.db.Preload("Items.MenuItem").First(&order, orderID).Error; err != nil {
		return nil, apperr.Internal("Failed to load order", err)
	}
	return &order, nil
}

// ListMine returns the caller's orders, newest first.
func (s *OrderService) ListMine(userID uint) ([]models.Order, *apperr.Error) {
	var orders []models.Order
	err := s.db.Preload("Items.MenuItem").
		Where("user_id = ?", userID).
		Order("order_date desc").
		Find(&orders).Error
	if err != nil {
		return nil, apperr.Internal("Failed to load orders", err)
	}
	return orders, nil
}
