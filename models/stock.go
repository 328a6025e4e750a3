package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

// StockEntry records a stock movement: positive on catalog entry or
// restock (order cancellation), matching the running Product.Quantity.
type StockEntry struct {
	gorm.Model
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Reason    string    `json:"reason"`
	AddedAt   time.Time `json:"added_at" gorm:"index"`
}
