package handlers

import (
	"net/http"

	"canteen-api/apperr"
	"canteen-api/models"
	"canteen-api/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	admin   *services.AdminService
	reports *services.ReportService
}

func NewAdminHandler(admin *services.AdminService, reports *services.ReportService) *AdminHandler {
	return &AdminHandler{admin: admin, reports: reports}
}

// ListOrders returns every order across all users, newest first.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, appErr := h.admin.ListAllOrders()
	if appErr != nil {
		fail(c, appErr)
		return
	}
	c.JSON(http.StatusOK, orderResponses(orders))
}

type setOrderStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

func (h *AdminHandler) SetOrderStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		fail(c, apperr.NotFound("Order not found"))
		return
	}
	var req setOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("Missing status field"))
		return
	}

	order, appErr := h.admin.SetOrderStatus(id, req.Status)
	if appErr != nil {
		fail(c, appErr)
		return
	}
	c.JSON(http.StatusOK, order.ToResponse())
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, appErr := h.admin.ListUsers()
	if appErr != nil {
		fail(c, appErr)
		return
	}
	c.JSON(http.StatusOK, users)
}

type setUserRoleRequest struct {
	Role models.UserRole `json:"role"`
}

func (h *AdminHandler) SetUserRole(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		fail(c, apperr.NotFound("User not found"))
		return
	}
	var req setUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("Invalid role specified"))
		return
	}

	user, appErr := h.admin.SetUserRole(id, req.Role)
	if appErr != nil {
		fail(c, appErr)
		return
	}
	c.JSON(http.StatusOK, user)
}

// SalesReport aggregates completed orders over a date range given as
// start_date/end_date query params (YYYY-MM-DD, default today).
func (h *AdminHandler) SalesReport(c *gin.Context) {
	report, appErr := h.reports.Sales(c.Query("start_date"), c.Query("end_date"))
	if appErr != nil {
		fail(c, appErr)
		return
	}
	c.JSON(http.StatusOK, report)
}
