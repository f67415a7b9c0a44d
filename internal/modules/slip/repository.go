package slip

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no slip exists for the requested ID.
var ErrNotFound = errors.New("slip not found")

// Repository defines data access for slips.
type Repository interface {
	Create(ctx context.Context, s *Slip) error
	GetByID(ctx context.Context, id string) (*Slip, error)
	ListByDate(ctx context.Context, businessDate string) ([]*Slip, error)
	Update(ctx context.Context, s *Slip) error
	Delete(ctx context.Context, id string) error

	// DistinctDatesDesc returns the most recent business dates that have at
	// least one slip, newest first, at most limit entries.
	DistinctDatesDesc(ctx context.Context, limit int) ([]string, error)
}
