package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kamau-dev/shopApp/controllers"
	"github.com/kamau-dev/shopApp/middleware"
)

func SetupRoutes(router *gin.Engine, reportTimeout time.Duration) {
	api := router.Group("/api")

	// Category routes
	categories := api.Group("/categories")
	{
		categories.POST("", controllers.CreateCategory)
		categories.GET("", controllers.GetCategories)
		categories.GET("/:id", controllers.GetCategory)
		categories.GET("/:id/products", controllers.GetCategoryProducts)
		categories.PUT("/:id", controllers.EditCategory)
		categories.DELETE("/:id", controllers.DeleteCategory)
	}

	// Product routes
	products := api.Group("/products")
	{
		products.GET("", controllers.GetProducts)
		products.GET("/:id", controllers.GetProduct)
		products.POST("", controllers.CreateProduct)
		products.PUT("/:id", controllers.UpdateProduct)
		products.DELETE("/:id", controllers.DeleteProduct)
		products.GET("/:id/stock-entries", controllers.GetStockEntries)
	}

	// Customer routes
	customers := api.Group("/customers")
	{
		customers.POST("", controllers.RegisterCustomer)
		customers.GET("", controllers.GetCustomers)
		customers.GET("/:id", controllers.GetCustomer)
		customers.GET("/:id/orders", controllers.GetCustomerOrders)
		customers.DELETE("/:id", controllers.DeleteCustomer)
	}

	// Order routes
	orders := api.Group("/orders")
	{
		orders.POST("", controllers.CreateOrder)
		orders.GET("", controllers.GetOrders)
		orders.GET("/:id", controllers.GetOrder)
		orders.DELETE("/:id", controllers.CancelOrder)
	}

	// Reports run under a caller-bounded deadline
	reports := api.Group("/reports")
	reports.Use(middleware.Deadline(reportTimeout))
	{
		reports.GET("/daily-revenue", controllers.GetDailyRevenue)
		reports.GET("/top-sellers", controllers.GetTopSellers)
		reports.GET("/high-spenders", controllers.GetHighSpenders)
		reports.GET("/inventory-value", controllers.GetInventoryValue)
		reports.GET("/low-stock", controllers.GetLowStock)
		reports.POST("", controllers.GenerateReport)
	}
}
