package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kamau-dev/shopApp/database"
	"github.com/kamau-dev/shopApp/store"
)

func CreateOrder(c *gin.Context) {
	var input struct {
		CustomerID uint                   `json:"customer_id" binding:"required"`
		OrderDate  string                 `json:"order_date"`
		Items      []store.OrderItemInput `json:"items" binding:"required,dive"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orderDate := time.Now()
	if input.OrderDate != "" {
		parsed, err := time.Parse("2006-01-02", input.OrderDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order_date format, want YYYY-MM-DD"})
			return
		}
		orderDate = parsed
	}

	order, err := store.CreateOrder(database.DB, input.CustomerID, orderDate, input.Items)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func GetOrders(c *gin.Context) {
	orders, err := store.ListOrders(database.DB)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := store.GetOrder(database.DB, id)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// CancelOrder removes the order and its lines and restores stock.
func CancelOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := store.CancelOrder(database.DB, id); err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully"})
}
