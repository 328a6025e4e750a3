package store_test

import (
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/require"

	"github.com/kamau-dev/shopApp/database"
	"github.com/kamau-dev/shopApp/models"
	"github.com/kamau-dev/shopApp/store"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	// every connection of the pool would otherwise get its own
	// in-memory database
	db.DB().SetMaxOpenConns(1)

	database.Migrate(db)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, quantity int) *models.Product {
	t.Helper()

	product, err := store.CreateProduct(db, store.ProductInput{
		Name:     name,
		Price:    price,
		Quantity: quantity,
	})
	require.NoError(t, err)
	return product
}

func seedCustomer(t *testing.T, db *gorm.DB, email string) *models.Customer {
	t.Helper()

	customer, err := store.RegisterCustomer(db, "Jane", "Doe", email, "bcrypt-hash")
	require.NoError(t, err)
	return customer
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}
