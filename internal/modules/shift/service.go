package shift

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hinode-pos/hinode-backend/internal/busdate"
)

// Service defines staff-segment business logic.
type Service interface {
	AddSegment(ctx context.Context, req CreateSegmentRequest) (*Segment, error)
	ListByDate(ctx context.Context, businessDate string) ([]*Segment, error)
	DeleteSegment(ctx context.Context, id string) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new segment service.
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) AddSegment(ctx context.Context, req CreateSegmentRequest) (*Segment, error) {
	start := strings.TrimSpace(req.StartTime)
	end := strings.TrimSpace(req.EndTime)
	name := strings.TrimSpace(req.StaffName)
	if start == "" || end == "" || name == "" {
		return nil, fmt.Errorf("start_time, end_time and staff_name are required")
	}

	now := s.now()
	seg := &Segment{
		ID:           uuid.New(),
		BusinessDate: busdate.Resolve(req.BusinessDate, now),
		StartTime:    start,
		EndTime:      end,
		StaffName:    name,
		CreatedAt:    busdate.Timestamp(now),
	}

	if err := s.repo.Create(ctx, seg); err != nil {
		return nil, err
	}
	return seg, nil
}

func (s *service) ListByDate(ctx context.Context, businessDate string) ([]*Segment, error) {
	return s.repo.ListByDate(ctx, businessDate)
}

func (s *service) DeleteSegment(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
