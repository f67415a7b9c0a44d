package food

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL food-count repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Upsert(ctx context.Context, c *Count) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO food_sales (business_date, item_key, quantity, updated_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (business_date, item_key)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`,
		c.BusinessDate, c.ItemKey, c.Quantity, c.UpdatedAt)
	return err
}

func (r *postgresRepo) CountsForDate(ctx context.Context, businessDate string) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT item_key, quantity FROM food_sales WHERE business_date=$1`, businessDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var qty int
		if err := rows.Scan(&key, &qty); err != nil {
			return nil, err
		}
		counts[key] = qty
	}
	return counts, rows.Err()
}

func (r *postgresRepo) RecentDays(ctx context.Context, limit int) ([]DayCounts, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT business_date, item_key, quantity
		FROM food_sales
		WHERE business_date IN (
			SELECT DISTINCT business_date FROM food_sales
			ORDER BY business_date DESC LIMIT $1
		)
		ORDER BY business_date DESC`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []DayCounts
	byDate := make(map[string]int) // date → index into days
	for rows.Next() {
		var date, key string
		var qty int
		if err := rows.Scan(&date, &key, &qty); err != nil {
			return nil, err
		}
		idx, ok := byDate[date]
		if !ok {
			days = append(days, DayCounts{BusinessDate: date, Counts: make(map[string]int)})
			idx = len(days) - 1
			byDate[date] = idx
		}
		days[idx].Counts[key] = qty
	}
	return days, rows.Err()
}
