package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

type Order struct {
	gorm.Model
	Number      string      `json:"order_number" gorm:"unique;not null"`
	CustomerID  uint        `json:"customer_id" gorm:"not null;index"`
	Customer    *Customer   `json:"-" gorm:"foreignKey:CustomerID;references:ID"`
	OrderDate   time.Time   `json:"order_date" gorm:"index;not null"`
	TotalAmount float64     `json:"total_amount" gorm:"not null"`
	Lines       []OrderLine `json:"lines" gorm:"foreignKey:OrderID"` // owned: cascade with the order
}
