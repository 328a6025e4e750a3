package store

import (
	"strings"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/kamau-dev/shopApp/models"
)

// ProductInput carries the caller-editable product fields.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
	CategoryID  *uint
}

func validateProductInput(db *gorm.DB, in ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return invalidArgf("product name must not be empty")
	}
	if in.Price < 0 {
		return invalidArgf("product price must not be negative, got %v", in.Price)
	}
	if in.Quantity < 0 {
		return invalidArgf("stock quantity must not be negative, got %d", in.Quantity)
	}
	if in.CategoryID != nil {
		var category models.Category
		if err := db.First(&category, *in.CategoryID).Error; err != nil {
			if gorm.IsRecordNotFoundError(err) {
				return &ForeignKeyViolation{Table: "categories", ID: *in.CategoryID}
			}
			return err
		}
	}
	return nil
}

// CreateProduct stores a product and its opening stock entry in one
// transaction.
func CreateProduct(db *gorm.DB, in ProductInput) (*models.Product, error) {
	if err := validateProductInput(db, in); err != nil {
		return nil, err
	}

	tx := db.Begin()

	product := models.Product{
		CategoryID:  in.CategoryID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
	}
	if err := tx.Create(&product).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if in.Quantity > 0 {
		entry := models.StockEntry{
			ProductID: product.ID,
			Quantity:  in.Quantity,
			Reason:    "catalog entry",
			AddedAt:   time.Now(),
		}
		if err := tx.Create(&entry).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func GetProduct(db *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func ListProducts(db *gorm.DB) ([]models.Product, error) {
	var products []models.Product
	if err := db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// UpdateProduct applies new field values; a stock increase is recorded
// as a StockEntry in the same transaction.
func UpdateProduct(db *gorm.DB, id uint, in ProductInput) (*models.Product, error) {
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		return nil, err
	}
	if err := validateProductInput(db, in); err != nil {
		return nil, err
	}

	quantityDiff := in.Quantity - product.Quantity

	tx := db.Begin()

	product.CategoryID = in.CategoryID
	product.Name = strings.TrimSpace(in.Name)
	product.Description = in.Description
	product.Price = in.Price
	product.Quantity = in.Quantity
	if err := tx.Save(&product).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if quantityDiff > 0 {
		entry := models.StockEntry{
			ProductID: product.ID,
			Quantity:  quantityDiff,
			Reason:    "stock addition",
			AddedAt:   time.Now(),
		}
		if err := tx.Create(&entry).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct refuses to delete a product that appears on any order.
func DeleteProduct(db *gorm.DB, id uint) error {
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		return err
	}

	var lineCount int64
	if err := db.Model(&models.OrderLine{}).
		Where("product_id = ?", id).
		Count(&lineCount).Error; err != nil {
		return err
	}
	if lineCount > 0 {
		return &ReferentialConflict{Table: "products", ID: id, ReferencedBy: "order_details"}
	}

	return db.Delete(&product).Error
}

func ListStockEntries(db *gorm.DB, productID uint) ([]models.StockEntry, error) {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		return nil, err
	}

	var entries []models.StockEntry
	if err := db.Where("product_id = ?", productID).
		Order("added_at, id").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
