package store_test

import (
	"testing"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/require"

	"github.com/kamau-dev/shopApp/store"
)

func TestCategories(t *testing.T) {
	t.Run("CreateRejectsEmptyName", func(t *testing.T) {
		db := newTestDB(t)

		_, err := store.CreateCategory(db, "   ")
		var invalid *store.InvalidArgument
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("CreateRejectsDuplicateName", func(t *testing.T) {
		db := newTestDB(t)

		_, err := store.CreateCategory(db, "Electronics")
		require.NoError(t, err)

		_, err = store.CreateCategory(db, "electronics")
		var unique *store.UniqueConstraintViolation
		require.ErrorAs(t, err, &unique)
	})

	t.Run("DeleteBlockedWhileReferenced", func(t *testing.T) {
		db := newTestDB(t)

		category, err := store.CreateCategory(db, "Electronics")
		require.NoError(t, err)

		product, err := store.CreateProduct(db, store.ProductInput{
			Name:       "Laptop",
			Price:      999.99,
			Quantity:   5,
			CategoryID: &category.ID,
		})
		require.NoError(t, err)

		err = store.DeleteCategory(db, category.ID)
		var conflict *store.ReferentialConflict
		require.ErrorAs(t, err, &conflict)
		require.Equal(t, "products", conflict.ReferencedBy)

		// removing the product unblocks the delete
		require.NoError(t, store.DeleteProduct(db, product.ID))
		require.NoError(t, store.DeleteCategory(db, category.ID))

		_, err = store.GetCategory(db, category.ID)
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("UpdateRename", func(t *testing.T) {
		db := newTestDB(t)

		category, err := store.CreateCategory(db, "Gadgets")
		require.NoError(t, err)

		updated, err := store.UpdateCategory(db, category.ID, "Accessories")
		require.NoError(t, err)
		require.Equal(t, "Accessories", updated.Name)
	})
}
