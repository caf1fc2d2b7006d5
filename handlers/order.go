package handlers

import (
	"net/http"

	"canteen-api/apperr"
	"canteen-api/middleware"
	"canteen-api/models"
	"canteen-api/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orders *services.OrderService
}

func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type placeOrderRequest struct {
	Items []struct {
		MenuItemID uint `json:"menu_item_id"`
		Quantity   int  `json:"quantity"`
	} `json:"items"`
}

func (h *OrderHandler) Place(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Items) == 0 {
		fail(c, apperr.Validation("Invalid or empty order data provided"))
		return
	}

	lines := make([]services.OrderLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, services.OrderLine{MenuItemID: it.MenuItemID, Quantity: it.Quantity})
	}

	order, appErr := h.orders.Place(userID, lines)
	if appErr != nil {
		fail(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order.ToResponse(),
	})
}

// ListMine returns the caller's orders, newest first.
func (h *OrderHandler) ListMine(c *gin.Context) {
	orders, appErr := h.orders.ListMine(middleware.GetUserID(c))
	if appErr != nil {
		fail(c, appErr)
		return
	}
	c.JSON(http.StatusOK, orderResponses(orders))
}

func orderResponses(orders []models.Order) []models.OrderResponse {
	out := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, orders[i].ToResponse())
	}
	return out
}
