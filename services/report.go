package services

import (
	"time"

	"canteen-api/apperr"
	"canteen-api/models"

	"gorm.io/gorm"
)

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

type SalesSummary struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalOrders  int64   `json:"total_orders"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
}

type BreakdownRow struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type SalesReport struct {
	Summary       SalesSummary   `json:"summary"`
	ItemBreakdown []BreakdownRow `json:"item_breakdown"`
}

const dateLayout = "2006-01-02"

// Sales aggregates Completed orders over an inclusive calendar-day
// range. Both bounds default to today (UTC) when omitted.
func (s *ReportService) Sales(startStr, endStr string) (*SalesReport, *apperr.Error) {
	today := time.Now().UTC()
	startDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	endDay := startDay

	if startStr != "" {
		d, err := time.ParseInLocation(dateLayout, startStr, time.UTC)
		if err != nil {
			return nil, apperr.Validation("Invalid date format. Please use YYYY-MM-DD.")
		}
		startDay = d
	}
	if endStr != "" {
		d, err := time.ParseInLocation(dateLayout, endStr, time.UTC)
		if err != nil {
			return nil, apperr.Validation("Invalid date format. Please use YYYY-MM-DD.")
		}
		endDay = d
	}
	// Upper bound is exclusive start-of-day-after so the whole end day
	// is counted.
	endExcl := endDay.AddDate(0, 0, 1)

	var revenue float64
	err := s.db.Model(&models.Order{}).
		Where("status = ? AND order_date >= ? AND order_date < ?", models.StatusCompleted, startDay, endExcl).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error
	if err != nil {
		return nil, apperr.Internal("Failed to build sales report", err)
	}

	var totalOrders int64
	err = s.db.Model(&models.Order{}).
		Where("status = ? AND order_date >= ? AND order_date < ?", models.StatusCompleted, startDay, endExcl).
		Count(&totalOrders).Error
	if err != nil {
		return nil, apperr.Internal("Failed to build sales report", err)
	}

	breakdown := []BreakdownRow{}
	err = s.db.Table("order_items").
		Select("menu_items.name AS name, SUM(order_items.quantity) AS quantity").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status = ? AND orders.order_date >= ? AND orders.order_date < ?", models.StatusCompleted, startDay, endExcl).
		Group("menu_items.name").
		Order("SUM(order_items.quantity) DESC").
		Scan(&breakdown).Error
	if err != nil {
		return nil, apperr.Internal("Failed to build sales report", err)
	}

	return &SalesReport{
		Summary: SalesSummary{
			TotalRevenue: revenue,
			TotalOrders:  totalOrders,
			StartDate:    startDay.Format(dateLayout),
			EndDate:      endDay.Format(dateLayout),
		},
		ItemBreakdown: breakdown,
	}, nil
}
