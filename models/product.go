package models

import (
	"github.com/jinzhu/gorm"
)

type Product struct {
	gorm.Model
	CategoryID  *uint        `json:"category_id" gorm:"index"` // nullable: a product may be uncategorized
	Category    *Category    `json:"-" gorm:"foreignKey:CategoryID;references:ID"`
	Name        string       `json:"name" gorm:"not null"`
	Description string       `json:"description"`
	Price       float64      `json:"price" gorm:"not null"`
	Quantity    int          `json:"stock_quantity" gorm:"not null"`
	Stock       []StockEntry `json:"-" gorm:"foreignKey:ProductID"`
	Lines       []OrderLine  `json:"-" gorm:"foreignKey:ProductID"`
}
