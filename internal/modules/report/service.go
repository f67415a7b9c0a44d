package report

import (
	"context"

	"github.com/hinode-pos/hinode-backend/internal/modules/food"
	"github.com/hinode-pos/hinode-backend/internal/modules/shift"
	"github.com/hinode-pos/hinode-backend/internal/modules/slip"
)

// DefaultWindow is the date window used when a caller does not say how many
// days it wants.
const DefaultWindow = 7

// Service assembles reports from the slip, food and shift repositories.
type Service interface {
	Daily(ctx context.Context, businessDate string) (*DailyReport, error)
	RecentDates(ctx context.Context, limit int) ([]string, error)
	DailySeries(ctx context.Context, limit int) ([]SeriesPoint, error)
	FoodWindow(ctx context.Context, window int) ([]food.ItemQuantity, error)
}

type service struct {
	slips  slip.Repository
	foods  food.Repository
	shifts shift.Repository
}

// NewService creates a reporting service over the three domain repositories.
func NewService(slips slip.Repository, foods food.Repository, shifts shift.Repository) Service {
	return &service{slips: slips, foods: foods, shifts: shifts}
}

func (s *service) Daily(ctx context.Context, businessDate string) (*DailyReport, error) {
	slips, err := s.slips.ListByDate(ctx, businessDate)
	if err != nil {
		return nil, err
	}
	counts, err := s.foods.CountsForDate(ctx, businessDate)
	if err != nil {
		return nil, err
	}
	segments, err := s.shifts.ListByDate(ctx, businessDate)
	if err != nil {
		return nil, err
	}
	if segments == nil {
		segments = []*shift.Segment{}
	}

	lines := make([]SlipLine, 0, len(slips))
	for _, sl := range slips {
		lines = append(lines, SlipLine{Slip: *sl, Time: sl.ClockTime()})
	}

	return &DailyReport{
		BusinessDate:   businessDate,
		Summary:        Summarize(slips),
		PaymentSummary: PaymentTotals(slips),
		FoodItems:      food.FillCatalog(counts),
		Slips:          lines,
		Segments:       segments,
	}, nil
}

func (s *service) RecentDates(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultWindow
	}
	dates, err := s.slips.DistinctDatesDesc(ctx, limit)
	if err != nil {
		return nil, err
	}
	if dates == nil {
		dates = []string{}
	}
	return dates, nil
}

// DailySeries returns per-day sales and customer totals for the most recent
// limit dates, oldest first, for chronological trend displays.
func (s *service) DailySeries(ctx context.Context, limit int) ([]SeriesPoint, error) {
	dates, err := s.RecentDates(ctx, limit)
	if err != nil {
		return nil, err
	}

	points := make([]SeriesPoint, 0, len(dates))
	// dates arrive newest first; walk backwards to emit oldest first.
	for i := len(dates) - 1; i >= 0; i-- {
		slips, err := s.slips.ListByDate(ctx, dates[i])
		if err != nil {
			return nil, err
		}
		sum := Summarize(slips)
		points = append(points, SeriesPoint{
			BusinessDate:   dates[i],
			TotalSales:     sum.TotalSales,
			TotalCustomers: sum.TotalCustomers,
		})
	}
	return points, nil
}

func (s *service) FoodWindow(ctx context.Context, window int) ([]food.ItemQuantity, error) {
	if window <= 0 {
		window = DefaultWindow
	}
	days, err := s.foods.RecentDays(ctx, window)
	if err != nil {
		return nil, err
	}
	return FoodTotals(days), nil
}
