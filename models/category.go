package models

import (
	"github.com/jinzhu/gorm"
)

type Category struct {
	gorm.Model
	Name     string    `json:"name" gorm:"not null;unique"`
	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"` // One-to-Many with Products
}
