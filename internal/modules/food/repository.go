package food

import "context"

// Repository defines data access for food-sale counts.
type Repository interface {
	// Upsert inserts or replaces the quantity for (business_date, item_key).
	Upsert(ctx context.Context, c *Count) error

	// CountsForDate returns the stored quantities for one date keyed by
	// item. Dates without rows yield an empty map, not an error.
	CountsForDate(ctx context.Context, businessDate string) (map[string]int, error)

	// RecentDays returns per-day quantities for the most recent limit
	// distinct dates that have at least one count row, newest first.
	RecentDays(ctx context.Context, limit int) ([]DayCounts, error)
}
