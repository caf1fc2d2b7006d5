package services

import (
	"errors"
	"fmt"

	"canteen-api/apperr"
	"canteen-api/models"

	"gorm.io/gorm"
)

type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

// List returns every menu item, available or not.
func (s *MenuService) List() ([]models.MenuItem, *apperr.Error) {
	var items []models.MenuItem
	if err := s.db.Find(&items).Error; err != nil {
		return nil, apperr.Internal("Failed to load menu", err)
	}
	return items, nil
}

func (s *MenuService) Create(name string, price float64, isAvailable bool) (*models.MenuItem, *apperr.Error) {
	item := models.MenuItem{
		Name:        name,
		Price:       price,
		IsAvailable: isAvailable,
	}
	// Write the availability column explicitly; otherwise a false value
	// is treated as zero and replaced by the schema default.
	if err := s.db.Select("Name", "Price", "IsAvailable").Create(&item).Error; err != nil {
		return nil, apperr.Internal("Failed to create menu item", err)
	}
	return &item, nil
}

// MenuItemUpdate carries a partial update; nil fields keep their
// previous values.
type MenuItemUpdate struct {
	Name        *string
	Price       *float64
	IsAvailable *bool
}

func (s *MenuService) Update(id uint, upd MenuItemUpdate) (*models.MenuItem, *apperr.Error) {
	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Menu item not found")
		}
		return nil, apperr.Internal("Failed to load menu item", err)
	}

	fields := map[string]interface{}{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Price != nil {
		fields["price"] = *upd.Price
	}
	if upd.IsAvailable != nil {
		fields["is_available"] = *upd.IsAvailable
	}
	if len(fields) > 0 {
		if err := s.db.Model(&item).Updates(fields).Error; err != nil {
			return nil, apperr.Internal("Failed to update menu item", err)
		}
	}
	return &item, nil
}

// SoftDelete marks an item unavailable. The row is kept so historical
// order lines stay resolvable.
func (s *MenuService) SoftDelete(id uint) (string, *apperr.Error) {
	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.NotFound("Menu item not found")
		}
		return "", apperr.Internal("Failed to load menu item", err)
	}
	if err := s.db.Model(&item).Update("is_available", false).Error; err != nil {
		return "", apperr.Internal("Failed to update menu item", err)
	}
	return fmt.Sprintf("Item with id %d has been marked as unavailable.", id), nil
}
