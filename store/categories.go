package store

import (
	"errors"
	"strings"

	"github.com/jinzhu/gorm"

	"github.com/kamau-dev/shopApp/models"
)

func CreateCategory(db *gorm.DB, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidArgf("category name must not be empty")
	}

	// Check for an existing category with the same name
	var existing models.Category
	err := db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&existing).Error
	if err == nil {
		return nil, &UniqueConstraintViolation{Field: "name", Value: name}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := models.Category{Name: name}
	if err := db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func GetCategory(db *gorm.DB, id uint) (*models.Category, error) {
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func ListCategories(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func UpdateCategory(db *gorm.DB, id uint, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidArgf("category name must not be empty")
	}

	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		return nil, err
	}

	var existing models.Category
	err := db.Where("LOWER(name) = ? AND id != ?", strings.ToLower(name), id).First(&existing).Error
	if err == nil {
		return nil, &UniqueConstraintViolation{Field: "name", Value: name}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category.Name = name
	if err := db.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory refuses to delete a category that still has products.
func DeleteCategory(db *gorm.DB, id uint) error {
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		return err
	}

	var productCount int64
	if err := db.Model(&models.Product{}).
		Where("category_id = ?", id).
		Count(&productCount).Error; err != nil {
		return err
	}
	if productCount > 0 {
		return &ReferentialConflict{Table: "categories", ID: id, ReferencedBy: "products"}
	}

	return db.Delete(&category).Error
}
