package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/kamau-dev/shopApp/models"
)

// OrderItemInput is one (product, quantity) pair of a checkout request.
type OrderItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// CreateOrder runs the whole checkout in one transaction: validate the
// customer, validate stock for every line, snapshot unit prices, compute
// the total, decrement stock and persist the order with its lines. Any
// failing line rolls back the entire order.
func CreateOrder(db *gorm.DB, customerID uint, orderDate time.Time, items []OrderItemInput) (*models.Order, error) {
	if len(items) == 0 {
		return nil, invalidArgf("order must have at least one line")
	}

	var customer models.Customer
	if err := db.First(&customer, customerID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, &ForeignKeyViolation{Table: "customers", ID: customerID}
		}
		return nil, err
	}

	tx := db.Begin()

	order := models.Order{
		Number:     uuid.NewString(),
		CustomerID: customer.ID,
		OrderDate:  orderDate,
	}

	// Validate every line and decrement stock before anything is final;
	// the surrounding transaction keeps partial work invisible.
	var lines []models.OrderLine
	for _, item := range items {
		if item.Quantity < 1 {
			tx.Rollback()
			return nil, invalidArgf("line quantity must be at least 1, got %d", item.Quantity)
		}

		var product models.Product
		if err := tx.First(&product, item.ProductID).Error; err != nil {
			tx.Rollback()
			if gorm.IsRecordNotFoundError(err) {
				return nil, &ForeignKeyViolation{Table: "products", ID: item.ProductID}
			}
			return nil, err
		}

		if product.Quantity < item.Quantity {
			tx.Rollback()
			return nil, &InsufficientStock{
				ProductID: product.ID,
				Requested: item.Quantity,
				Available: product.Quantity,
			}
		}

		product.Quantity -= item.Quantity
		if err := tx.Save(&product).Error; err != nil {
			tx.Rollback()
			return nil, err
		}

		lines = append(lines, models.OrderLine{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
		order.TotalAmount += float64(item.Quantity) * product.Price
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	for i := range lines {
		lines[i].OrderID = order.ID
		if err := tx.Create(&lines[i]).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	order.Lines = lines
	return &order, nil
}

func GetOrder(db *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Lines").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func ListOrders(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	if err := db.Preload("Lines").Order("order_date DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func ListCustomerOrders(db *gorm.DB, customerID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := db.Preload("Lines").
		Where("customer_id = ?", customerID).
		Order("order_date DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// CancelOrder removes an order and all its lines (the order owns them)
// and returns every line's quantity to product stock.
func CancelOrder(db *gorm.DB, id uint) error {
	var order models.Order
	if err := db.Preload("Lines").First(&order, id).Error; err != nil {
		return err
	}

	tx := db.Begin()

	for _, line := range order.Lines {
		var product models.Product
		if err := tx.First(&product, line.ProductID).Error; err != nil {
			tx.Rollback()
			return err
		}
		product.Quantity += line.Quantity
		if err := tx.Save(&product).Error; err != nil {
			tx.Rollback()
			return err
		}

		entry := models.StockEntry{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Reason:    "order cancellation",
			AddedAt:   time.Now(),
		}
		if err := tx.Create(&entry).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderLine{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&order).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
