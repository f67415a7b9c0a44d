package shift

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL segment repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, seg *Segment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO staff_segments (id, business_date, start_time, end_time, staff_name, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		seg.ID, seg.BusinessDate, seg.StartTime, seg.EndTime, seg.StaffName, seg.CreatedAt)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Segment, error) {
	return r.scan(r.db.QueryRowContext(ctx, `
		SELECT id, business_date, start_time, end_time, staff_name, created_at
		FROM staff_segments WHERE id=$1`, id))
}

func (r *postgresRepo) ListByDate(ctx context.Context, businessDate string) ([]*Segment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, business_date, start_time, end_time, staff_name, created_at
		FROM staff_segments WHERE business_date=$1 ORDER BY start_time ASC, created_at ASC`, businessDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var segments []*Segment
	for rows.Next() {
		seg, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, rows.Err()
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM staff_segments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface{ Scan(dest ...interface{}) error }

func (r *postgresRepo) scan(row rowScanner) (*Segment, error) {
	seg := &Segment{}
	err := row.Scan(&seg.ID, &seg.BusinessDate, &seg.StartTime, &seg.EndTime, &seg.StaffName, &seg.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return seg, nil
}
