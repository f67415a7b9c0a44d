package slip

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL slip repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, s *Slip) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO slips (id, business_date, table_name, people, amount, payment_method, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		s.ID, s.BusinessDate, nullable(s.TableName), s.People, s.Amount, s.PaymentMethod, s.CreatedAt)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Slip, error) {
	return r.scan(r.db.QueryRowContext(ctx, `
		SELECT id, business_date, table_name, people, amount, payment_method, created_at
		FROM slips WHERE id=$1`, id))
}

func (r *postgresRepo) ListByDate(ctx context.Context, businessDate string) ([]*Slip, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, business_date, table_name, people, amount, payment_method, created_at
		FROM slips WHERE business_date=$1 ORDER BY created_at ASC, id ASC`, businessDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slips []*Slip
	for rows.Next() {
		s, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		slips = append(slips, s)
	}
	return slips, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, s *Slip) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE slips SET table_name=$1, people=$2, amount=$3 WHERE id=$4`,
		nullable(s.TableName), s.People, s.Amount, s.ID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM slips WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *postgresRepo) DistinctDatesDesc(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT business_date FROM slips ORDER BY business_date DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// ── scanner ───────────────────────────────────────────────────────────────────

type rowScanner interface{ Scan(dest ...interface{}) error }

func (r *postgresRepo) scan(row rowScanner) (*Slip, error) {
	s := &Slip{}
	var tableName sql.NullString
	err := row.Scan(&s.ID, &s.BusinessDate, &tableName,
		&s.People, &s.Amount, &s.PaymentMethod, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if tableName.Valid {
		s.TableName = tableName.String
	}
	return s, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
