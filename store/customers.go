package store

import (
	"errors"
	"strings"

	"github.com/jinzhu/gorm"

	"github.com/kamau-dev/shopApp/models"
)

// RegisterCustomer stores a new customer. passwordHash must already be
// an opaque credential; the store never sees or logs a plaintext password.
func RegisterCustomer(db *gorm.DB, firstName, lastName, email, passwordHash string) (*models.Customer, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, invalidArgf("email must not be empty")
	}
	if passwordHash == "" {
		return nil, invalidArgf("password must not be empty")
	}

	// Check if a customer already registered with this email
	var existing models.Customer
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, &UniqueConstraintViolation{Field: "email", Value: email}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	customer := models.Customer{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  passwordHash,
	}
	if err := db.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func GetCustomer(db *gorm.DB, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := db.First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func GetCustomerByEmail(db *gorm.DB, email string) (*models.Customer, error) {
	var customer models.Customer
	email = strings.TrimSpace(strings.ToLower(email))
	if err := db.Where("email = ?", email).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func ListCustomers(db *gorm.DB) ([]models.Customer, error) {
	var customers []models.Customer
	if err := db.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// DeleteCustomer refuses to delete a customer with order history.
func DeleteCustomer(db *gorm.DB, id uint) error {
	var customer models.Customer
	if err := db.First(&customer, id).Error; err != nil {
		return err
	}

	var orderCount int64
	if err := db.Model(&models.Order{}).
		Where("customer_id = ?", id).
		Count(&orderCount).Error; err != nil {
		return err
	}
	if orderCount > 0 {
		return &ReferentialConflict{Table: "customers", ID: id, ReferencedBy: "orders"}
	}

	return db.Delete(&customer).Error
}
