package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/kamau-dev/shopApp/database"
	"github.com/kamau-dev/shopApp/store"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// RegisterCustomer creates a customer account. The plaintext password is
// hashed here and never stored or logged.
func RegisterCustomer(c *gin.Context) {
	var input struct {
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	customer, err := store.RegisterCustomer(database.DB, input.FirstName, input.LastName, input.Email, hashedPassword)
	if err != nil {
		handleStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Customer registered successfully",
		"customer": customer,
	})
}

func GetCustomers(c *gin.Context) {
	customers, err := store.ListCustomers(database.DB)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func GetCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	customer, err := store.GetCustomer(database.DB, id)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func GetCustomerOrders(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := store.GetCustomer(database.DB, id); err != nil {
		handleStoreError(c, err)
		return
	}

	orders, err := store.ListCustomerOrders(database.DB, id)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func DeleteCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := store.DeleteCustomer(database.DB, id); err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
