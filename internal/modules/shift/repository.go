package shift

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no segment exists for the requested ID.
var ErrNotFound = errors.New("segment not found")

// Repository defines data access for staff segments.
type Repository interface {
	Create(ctx context.Context, seg *Segment) error
	GetByID(ctx context.Context, id string) (*Segment, error)
	ListByDate(ctx context.Context, businessDate string) ([]*Segment, error)
	Delete(ctx context.Context, id string) error
}
