package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kamau-dev/shopApp/store"
)

func TestProducts(t *testing.T) {
	t.Run("CreateRejectsNegativePrice", func(t *testing.T) {
		db := newTestDB(t)

		_, err := store.CreateProduct(db, store.ProductInput{Name: "Mug", Price: -1})
		var invalid *store.InvalidArgument
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("CreateRejectsNegativeStock", func(t *testing.T) {
		db := newTestDB(t)

		_, err := store.CreateProduct(db, store.ProductInput{Name: "Mug", Price: 4.5, Quantity: -3})
		var invalid *store.InvalidArgument
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("CreateRejectsDanglingCategory", func(t *testing.T) {
		db := newTestDB(t)

		missing := uint(999)
		_, err := store.CreateProduct(db, store.ProductInput{
			Name:       "Mug",
			Price:      4.5,
			CategoryID: &missing,
		})
		var fk *store.ForeignKeyViolation
		require.ErrorAs(t, err, &fk)
		require.Equal(t, "categories", fk.Table)
		require.Equal(t, missing, fk.ID)
	})

	t.Run("CreateRecordsOpeningStock", func(t *testing.T) {
		db := newTestDB(t)

		product := seedProduct(t, db, "Mug", 4.5, 20)

		entries, err := store.ListStockEntries(db, product.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, 20, entries[0].Quantity)
		require.Equal(t, "catalog entry", entries[0].Reason)
	})

	t.Run("UpdateRecordsStockIncrease", func(t *testing.T) {
		db := newTestDB(t)

		product := seedProduct(t, db, "Mug", 4.5, 20)

		updated, err := store.UpdateProduct(db, product.ID, store.ProductInput{
			Name:     "Mug",
			Price:    5.0,
			Quantity: 35,
		})
		require.NoError(t, err)
		require.Equal(t, 35, updated.Quantity)
		require.Equal(t, 5.0, updated.Price)

		entries, err := store.ListStockEntries(db, product.ID)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		require.Equal(t, 15, entries[1].Quantity)
	})

	t.Run("UpdateRejectsNegativeStock", func(t *testing.T) {
		db := newTestDB(t)

		product := seedProduct(t, db, "Mug", 4.5, 20)

		_, err := store.UpdateProduct(db, product.ID, store.ProductInput{
			Name:     "Mug",
			Price:    4.5,
			Quantity: -1,
		})
		var invalid *store.InvalidArgument
		require.ErrorAs(t, err, &invalid)

		// nothing was written
		unchanged, err := store.GetProduct(db, product.ID)
		require.NoError(t, err)
		require.Equal(t, 20, unchanged.Quantity)
	})

	t.Run("DeleteBlockedWhileOrdered", func(t *testing.T) {
		db := newTestDB(t)

		product := seedProduct(t, db, "Mug", 4.5, 20)
		customer := seedCustomer(t, db, "jane@example.com")

		_, err := store.CreateOrder(db, customer.ID, date(2026, 2, 10), []store.OrderItemInput{
			{ProductID: product.ID, Quantity: 2},
		})
		require.NoError(t, err)

		err = store.DeleteProduct(db, product.ID)
		var conflict *store.ReferentialConflict
		require.ErrorAs(t, err, &conflict)
		require.Equal(t, "order_details", conflict.ReferencedBy)
	})
}
