package food

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/hinode-pos/hinode-backend/internal/busdate"
)

// Service defines food-count business logic.
type Service interface {
	// SaveCounts writes one day's quantities. Keys outside the catalog are
	// ignored; quantities that fail to parse are saved as 0. Catalog items
	// missing from the request are written as 0 so a save always leaves
	// the full day in a known state.
	SaveCounts(ctx context.Context, req SaveCountsRequest) (string, error)

	// ItemsForDate returns the full catalog with quantities for the date,
	// zero-filled for items without a stored row.
	ItemsForDate(ctx context.Context, businessDate string) ([]ItemQuantity, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new food-count service.
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func parseQuantity(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (s *service) SaveCounts(ctx context.Context, req SaveCountsRequest) (string, error) {
	now := s.now()
	date := busdate.Resolve(req.BusinessDate, now)
	stamp := busdate.Timestamp(now)

	for _, item := range Catalog {
		c := &Count{
			BusinessDate: date,
			ItemKey:      item.Key,
			Quantity:     parseQuantity(req.Counts[item.Key]),
			UpdatedAt:    stamp,
		}
		if err := s.repo.Upsert(ctx, c); err != nil {
			return "", err
		}
	}
	return date, nil
}

func (s *service) ItemsForDate(ctx context.Context, businessDate string) ([]ItemQuantity, error) {
	counts, err := s.repo.CountsForDate(ctx, businessDate)
	if err != nil {
		return nil, err
	}
	return FillCatalog(counts), nil
}

// FillCatalog expands a sparse quantity map into the full catalog order,
// zero-filling missing items.
func FillCatalog(counts map[string]int) []ItemQuantity {
	items := make([]ItemQuantity, 0, len(Catalog))
	for _, item := range Catalog {
		items = append(items, ItemQuantity{
			Key:      item.Key,
			Label:    item.Label,
			Quantity: counts[item.Key],
		})
	}
	return items
}
