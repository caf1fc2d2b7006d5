package models

import "time"

// OrderStatus represents the states an order can be in. Admins may set
// any status at any time; there is no enforced transition graph.
type OrderStatus string

const (
	StatusAwaitingApproval OrderStatus = "Awaiting Approval"
	StatusConfirmed        OrderStatus = "Confirmed"
	StatusCompleted        OrderStatus = "Completed"
	StatusCancelled        OrderStatus = "Cancelled"
)

// ValidOrderStatus reports whether s is one of the known statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case StatusAwaitingApproval, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID uint `gorm:"primaryKey"`
	// DailyOrderID restarts at 1 each UTC calendar day. It is computed
	// as count-of-today's-orders+1 at placement time and is not
	// guaranteed unique under concurrent placements.
	DailyOrderID int         `gorm:"not null"`
	UserID       uint        `gorm:"not null"`
	User         User        `gorm:"foreignKey:UserID"`
	TotalAmount  float64     `gorm:"not null"`
	OrderDate    time.Time   `gorm:"not null"`
	Status       OrderStatus `gorm:"not null"`
	Items        []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	ID         uint     `gorm:"primaryKey"`
	OrderID    uint     `gorm:"not null"`
	MenuItemID uint     `gorm:"not null"`
	MenuItem   MenuItem `gorm:"foreignKey:MenuItemID"`
	Quantity   int      `gorm:"not null"`
}

type OrderItemResponse struct {
	MenuItemName string  `json:"menu_item_name"`
	Quantity     int     `json:"quantity"`
	PricePerItem float64 `json:"price_per_item"`
}

type OrderResponse struct {
	OrderID      uint                `json:"order_id"`
	DailyOrderID int                 `json:"daily_order_id"`
	TotalAmount  float64             `json:"total_amount"`
	OrderDate    string              `json:"order_date"`
	Status       OrderStatus         `json:"status"`
	Items        []OrderItemResponse `json:"items"`
}

// ToResponse shapes an order for the API. Item name and price are read
// from the referenced MenuItem as it is now, not as it was at placement
// time; TotalAmount keeps the placement-time pricing. Callers must have
// preloaded Items.MenuItem.
func (o *Order) ToResponse() OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			MenuItemName: it.MenuItem.Name,
			Quantity:     it.Quantity,
			PricePerItem: it.MenuItem.Price,
		})
	}
	return OrderResponse{
		OrderID:      o.ID,
		DailyOrderID: o.DailyOrderID,
		TotalAmount:  o.TotalAmount,
		OrderDate:    o.OrderDate.UTC().Format(time.RFC3339),
		Status:       o.Status,
		Items:        items,
	}
}
