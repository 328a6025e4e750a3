package models

import (
	"github.com/jinzhu/gorm"
)

type Customer struct {
	gorm.Model
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email" gorm:"unique;not null"`
	Password  string  `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	Orders    []Order `json:"-" gorm:"foreignKey:CustomerID"`
}
