package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kamau-dev/shopApp/store"
)

func TestCustomers(t *testing.T) {
	t.Run("RegisterRejectsDuplicateEmail", func(t *testing.T) {
		db := newTestDB(t)

		_, err := store.RegisterCustomer(db, "Jane", "Doe", "jane@example.com", "hash-1")
		require.NoError(t, err)

		_, err = store.RegisterCustomer(db, "Janet", "Doe", "Jane@Example.com", "hash-2")
		var unique *store.UniqueConstraintViolation
		require.ErrorAs(t, err, &unique)
		require.Equal(t, "email", unique.Field)
	})

	t.Run("RegisterRejectsEmptyEmail", func(t *testing.T) {
		db := newTestDB(t)

		_, err := store.RegisterCustomer(db, "Jane", "Doe", "  ", "hash")
		var invalid *store.InvalidArgument
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("LookupByEmail", func(t *testing.T) {
		db := newTestDB(t)

		created := seedCustomer(t, db, "jane@example.com")

		found, err := store.GetCustomerByEmail(db, "JANE@example.com")
		require.NoError(t, err)
		require.Equal(t, created.ID, found.ID)
	})

	t.Run("DeleteBlockedWhileOrdersExist", func(t *testing.T) {
		db := newTestDB(t)

		customer := seedCustomer(t, db, "jane@example.com")
		product := seedProduct(t, db, "Mug", 4.5, 20)

		_, err := store.CreateOrder(db, customer.ID, date(2026, 2, 10), []store.OrderItemInput{
			{ProductID: product.ID, Quantity: 1},
		})
		require.NoError(t, err)

		err = store.DeleteCustomer(db, customer.ID)
		var conflict *store.ReferentialConflict
		require.ErrorAs(t, err, &conflict)
		require.Equal(t, "orders", conflict.ReferencedBy)
	})
}
