package routes

import (
	"github.com/gin-gonic/gin"

	"rms-api/controllers"
	"rms-api/middlewares"
	"rms-api/models"
)

func RegisterRoutes(r *gin.Engine) {

	r.POST("/login", controllers.Login)

	// Public menu for the landing page
	r.GET("/public/menu", controllers.GetPublicMenu)

	// Menu (catalog, read-only)
	menu := r.Group("/menu")
	menu.Use(middlewares.AuthMiddleware())
	{
		menu.GET("/", controllers.GetMenu)
	}

	// Tables
	tables := r.Group("/tables")
	tables.Use(middlewares.AuthMiddleware())
	{
		tables.GET("/", controllers.GetTables)
		tables.POST("/:number/select", controllers.SelectTable)
		tables.POST("/:number/order", controllers.CreateTableOrder)
		tables.PATCH("/:number/status",
			middlewares.RoleMiddleware(models.RoleStaff, models.RoleManager),
			controllers.SetTableStatus)
	}

	// Orders
	orders := r.Group("/orders")
	orders.Use(middlewares.AuthMiddleware())
	{
		orders.GET("/:id", controllers.GetOrder)
		orders.POST("/:id/items", controllers.AddOrderItem)
		orders.POST("/:id/finalize",
			middlewares.RoleMiddleware(models.RoleStaff, models.RoleManager),
			controllers.FinalizeOrder)
		orders.DELETE("/:id",
			middlewares.RoleMiddleware(models.RoleStaff, models.RoleManager),
			controllers.DeleteOrder)
	}

	// Invoices (staff + manager only)
	invoices := r.Group("/invoices")
	invoices.Use(middlewares.AuthMiddleware(),
		middlewares.RoleMiddleware(models.RoleStaff, models.RoleManager))
	{
		invoices.GET("/", controllers.GetInvoices)
		invoices.GET("/:id", controllers.GetInvoiceByID)
	}
}
