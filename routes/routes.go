package routes

import (
	"canteen-api/handlers"
	"canteen-api/middleware"
	"canteen-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup builds the service and handler graph on top of the injected DB
// handle and registers every route.
func Setup(r *gin.Engine, db *gorm.DB, jwtSecret []byte) {
	menuH := handlers.NewMenuHandler(services.NewMenuService(db))
	authH := handlers.NewAuthHandler(services.NewAccountService(db, jwtSecret))
	orderH := handlers.NewOrderHandler(services.NewOrderService(db))
	adminH := handlers.NewAdminHandler(services.NewAdminService(db), services.NewReportService(db))

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.GET("/menu", menuH.List)
		public.POST("/register", authH.Register)
		public.POST("/login", authH.Login)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(jwtSecret))
	{
		auth.GET("/profile", authH.Profile)
		auth.POST("/orders", orderH.Place)
		auth.GET("/orders", orderH.ListMine)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.POST("/menu", menuH.Create)
		admin.PUT("/menu/:id", menuH.Update)
		admin.DELETE("/menu/:id", menuH.Delete)

		admin.GET("/admin/orders", adminH.ListOrders)
		admin.PUT("/admin/orders/:id", adminH.SetOrderStatus)
		admin.GET("/admin/users", adminH.ListUsers)
		admin.PUT("/admin/users/:id", adminH.SetUserRole)
		admin.GET("/admin/reports/sales", adminH.SalesReport)
	}
}
