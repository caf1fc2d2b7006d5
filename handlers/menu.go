package handlers

import (
	"net/http"

	"canteen-api/apperr"
	"canteen-api/services"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menu *services.MenuService
}

func NewMenuHandler(menu *services.MenuService) *MenuHandler {
	return &MenuHandler{menu: menu}
}

// List returns the full menu, including unavailable items. Public.
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.menu.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

type createMenuItemRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	IsAvailable *bool    `json:"is_available"`
}

func (h *MenuHandler) Create(c *gin.Context) {
	var req createMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == nil || req.Price == nil {
		fail(c, apperr.Validation("Error: Missing name or price"))
		return
	}
	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	item, appErr := h.menu.Create(*req.Name, *req.Price, isAvailable)
	if appErr != nil {
		fail(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, item)
}

type updateMenuItemRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	IsAvailable *bool    `json:"is_available"`
}

// Update applies a partial update; omitted fields keep their values.
func (h *MenuHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		fail(c, apperr.NotFound("Menu item not found"))
		return
	}
	var req updateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("Invalid request body"))
		return
	}

	item, appErr := h.menu.Update(id, services.MenuItemUpdate{
		Name:        req.Name,
		Price:       req.Price,
		IsAvailable: req.IsAvailable,
	})
	if appErr != nil {
		fail(c, appErr)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete soft-deletes: the item is marked unavailable, never removed.
func (h *MenuHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		fail(c, apperr.NotFound("Menu item not found"))
		return
	}
	msg, appErr := h.menu.SoftDelete(id)
	if appErr != nil {
		fail(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
