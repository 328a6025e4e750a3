package models

import (
	"github.com/jinzhu/gorm"
)

type OrderLine struct {
	gorm.Model
	OrderID   uint    `json:"order_id" gorm:"not null;index"`
	ProductID uint    `json:"product_id" gorm:"not null;index"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	UnitPrice float64 `json:"unit_price" gorm:"not null"` // product price snapshot at order time
}

// TableName keeps the legacy order_details table name.
func (OrderLine) TableName() string {
	return "order_details"
}
