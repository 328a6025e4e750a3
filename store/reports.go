package store

import (
	"context"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/kamau-dev/shopApp/models"
)

// ProductSales is one row of the top-sellers report.
type ProductSales struct {
	ProductID     uint   `json:"product_id"`
	Name          string `json:"name"`
	TotalQuantity int64  `json:"total_quantity_sold"`
}

// CustomerSpend is one row of the high-spenders report.
type CustomerSpend struct {
	CustomerID uint    `json:"customer_id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      string  `json:"email"`
	TotalSpent float64 `json:"total_spent"`
}

// Report queries never mutate the store; a caller-supplied deadline is
// honored at the query boundary.
func checkDeadline(ctx context.Context) error {
	if ctx.Err() != nil {
		return ErrTimeout
	}
	return nil
}

func dayRange(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}

// DailyRevenue sums total_amount over all orders placed on the given
// calendar date. A date with no orders yields 0.
func DailyRevenue(ctx context.Context, db *gorm.DB, day time.Time) (float64, error) {
	if err := checkDeadline(ctx); err != nil {
		return 0, err
	}

	start, end := dayRange(day)

	var revenue float64
	err := db.Raw(
		"SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE order_date >= ? AND order_date < ? AND deleted_at IS NULL",
		start, end,
	).Row().Scan(&revenue)
	if err != nil {
		return 0, err
	}
	return revenue, nil
}

// TopSellers returns per-product summed quantities over the inclusive
// [start, end] date range, best seller first, ties broken by product id.
func TopSellers(ctx context.Context, db *gorm.DB, start, end time.Time) ([]ProductSales, error) {
	if err := checkDeadline(ctx); err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, invalidArgf("range end %s is before start %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	rangeStart, _ := dayRange(start)
	_, rangeEnd := dayRange(end)

	rows, err := db.Raw(`
		SELECT p.id, p.name, SUM(d.quantity) AS total_quantity
		FROM order_details d
		JOIN orders o ON o.id = d.order_id
		JOIN products p ON p.id = d.product_id
		WHERE o.order_date >= ? AND o.order_date < ?
		  AND d.deleted_at IS NULL AND o.deleted_at IS NULL AND p.deleted_at IS NULL
		GROUP BY p.id, p.name
		ORDER BY total_quantity DESC, p.id ASC`,
		rangeStart, rangeEnd,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []ProductSales
	for rows.Next() {
		var row ProductSales
		if err := rows.Scan(&row.ProductID, &row.Name, &row.TotalQuantity); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// HighSpenders returns customers whose order totals over the trailing
// window (now-window, now] strictly exceed the threshold, biggest
// spender first.
func HighSpenders(ctx context.Context, db *gorm.DB, now time.Time, window time.Duration, threshold float64) ([]CustomerSpend, error) {
	if err := checkDeadline(ctx); err != nil {
		return nil, err
	}
	if window <= 0 {
		return nil, invalidArgf("window must be positive, got %s", window)
	}

	since := now.Add(-window)

	rows, err := db.Raw(`
		SELECT c.id, c.first_name, c.last_name, c.email, SUM(o.total_amount) AS total_spent
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.order_date > ? AND o.order_date <= ?
		  AND o.deleted_at IS NULL AND c.deleted_at IS NULL
		GROUP BY c.id, c.first_name, c.last_name, c.email
		HAVING SUM(o.total_amount) > ?
		ORDER BY total_spent DESC`,
		since, now, threshold,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []CustomerSpend
	for rows.Next() {
		var row CustomerSpend
		if err := rows.Scan(&row.CustomerID, &row.FirstName, &row.LastName, &row.Email, &row.TotalSpent); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// InventoryValue sums price*quantity over live products.
func InventoryValue(ctx context.Context, db *gorm.DB) (float64, error) {
	if err := checkDeadline(ctx); err != nil {
		return 0, err
	}

	var totalValue float64
	err := db.Raw(
		"SELECT COALESCE(SUM(price * quantity), 0) AS total_value FROM products WHERE deleted_at IS NULL",
	).Row().Scan(&totalValue)
	if err != nil {
		return 0, err
	}
	return totalValue, nil
}

// LowStock lists products at or below the given stock threshold.
func LowStock(ctx context.Context, db *gorm.DB, threshold int) ([]models.Product, error) {
	if err := checkDeadline(ctx); err != nil {
		return nil, err
	}
	if threshold < 0 {
		return nil, invalidArgf("stock threshold must not be negative, got %d", threshold)
	}

	var products []models.Product
	if err := db.Where("quantity <= ?", threshold).Order("quantity").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
