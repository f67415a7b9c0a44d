package report

import (
	"context"
	"sort"
	"testing"

	"github.com/hinode-pos/hinode-backend/internal/modules/food"
	"github.com/hinode-pos/hinode-backend/internal/modules/shift"
	"github.com/hinode-pos/hinode-backend/internal/modules/slip"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type fakeSlipRepo struct {
	byDate map[string][]*slip.Slip
}

func (f *fakeSlipRepo) Create(context.Context, *slip.Slip) error          { return nil }
func (f *fakeSlipRepo) GetByID(context.Context, string) (*slip.Slip, error) {
	return nil, slip.ErrNotFound
}
func (f *fakeSlipRepo) Update(context.Context, *slip.Slip) error { return nil }
func (f *fakeSlipRepo) Delete(context.Context, string) error     { return nil }

func (f *fakeSlipRepo) ListByDate(_ context.Context, date string) ([]*slip.Slip, error) {
	return f.byDate[date], nil
}

func (f *fakeSlipRepo) DistinctDatesDesc(_ context.Context, limit int) ([]string, error) {
	var dates []string
	for d := range f.byDate {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) > limit {
		dates = dates[:limit]
	}
	return dates, nil
}

type fakeFoodRepo struct {
	days []food.DayCounts // newest first
}

func (f *fakeFoodRepo) Upsert(context.Context, *food.Count) error { return nil }

func (f *fakeFoodRepo) CountsForDate(_ context.Context, date string) (map[string]int, error) {
	for _, day := range f.days {
		if day.BusinessDate == date {
			return day.Counts, nil
		}
	}
	return map[string]int{}, nil
}

func (f *fakeFoodRepo) RecentDays(_ context.Context, limit int) ([]food.DayCounts, error) {
	if len(f.days) > limit {
		return f.days[:limit], nil
	}
	return f.days, nil
}

type fakeShiftRepo struct {
	byDate map[string][]*shift.Segment
}

func (f *fakeShiftRepo) Create(context.Context, *shift.Segment) error { return nil }
func (f *fakeShiftRepo) GetByID(context.Context, string) (*shift.Segment, error) {
	return nil, shift.ErrNotFound
}
func (f *fakeShiftRepo) Delete(context.Context, string) error { return nil }

func (f *fakeShiftRepo) ListByDate(_ context.Context, date string) ([]*shift.Segment, error) {
	return f.byDate[date], nil
}

// ── tests ─────────────────────────────────────────────────────────────────────

func newTestService() Service {
	slips := &fakeSlipRepo{byDate: map[string][]*slip.Slip{
		"2025-06-10": {
			{Amount: 1000, People: 2, PaymentMethod: slip.PaymentCash, CreatedAt: "2025-06-10 19:12"},
			{Amount: 500, People: 1, PaymentMethod: slip.PaymentCredit, CreatedAt: "2025-06-10 20:40"},
		},
		"2025-06-09": {
			{Amount: 8000, People: 4, PaymentMethod: slip.PaymentCash, CreatedAt: "2025-06-09 18:00"},
		},
		"2025-06-07": {
			{Amount: 2000, People: 2, PaymentMethod: slip.PaymentPayPay, CreatedAt: "2025-06-07 18:30"},
		},
	}}
	foods := &fakeFoodRepo{days: []food.DayCounts{
		{BusinessDate: "2025-06-10", Counts: map[string]int{"steak": 3}},
		{BusinessDate: "2025-06-09", Counts: map[string]int{"steak": 2, "burger": 1}},
		{BusinessDate: "2025-06-07", Counts: map[string]int{"shrimp": 4}},
	}}
	shifts := &fakeShiftRepo{byDate: map[string][]*shift.Segment{
		"2025-06-10": {
			{BusinessDate: "2025-06-10", StartTime: "18:00", EndTime: "21:00", StaffName: "张三"},
		},
	}}
	return NewService(slips, foods, shifts)
}

func TestDaily(t *testing.T) {
	svc := newTestService()

	rep, err := svc.Daily(context.Background(), "2025-06-10")
	if err != nil {
		t.Fatalf("Daily failed: %v", err)
	}

	want := Summary{TotalSales: 1500, TotalCustomers: 3, TotalTables: 2, AvgPerCustomer: 500}
	if rep.Summary != want {
		t.Errorf("summary = %+v, want %+v", rep.Summary, want)
	}

	wantPayments := map[slip.PaymentMethod]int{slip.PaymentCash: 1000, slip.PaymentCredit: 500}
	if len(rep.PaymentSummary) != 5 {
		t.Fatalf("payment summary has %d entries, want 5", len(rep.PaymentSummary))
	}
	for _, p := range rep.PaymentSummary {
		if p.Amount != wantPayments[p.Key] {
			t.Errorf("%s = %d, want %d", p.Key, p.Amount, wantPayments[p.Key])
		}
	}

	if len(rep.FoodItems) != len(food.Catalog) {
		t.Errorf("food items = %d entries, want full catalog", len(rep.FoodItems))
	}
	if len(rep.Slips) != 2 {
		t.Fatalf("slips = %d, want 2", len(rep.Slips))
	}
	if rep.Slips[0].Time != "19:12" {
		t.Errorf("first slip time = %q, want 19:12", rep.Slips[0].Time)
	}
	if len(rep.Segments) != 1 || rep.Segments[0].StaffName != "张三" {
		t.Errorf("segments = %+v, want the one recorded segment", rep.Segments)
	}
}

func TestDailyForDateWithoutRecords(t *testing.T) {
	svc := newTestService()

	rep, err := svc.Daily(context.Background(), "2030-01-01")
	if err != nil {
		t.Fatalf("Daily failed: %v", err)
	}
	if rep.Summary != (Summary{}) {
		t.Errorf("summary = %+v, want all zeros", rep.Summary)
	}
	if len(rep.PaymentSummary) != 5 {
		t.Errorf("payment summary should still cover all 5 methods, got %d", len(rep.PaymentSummary))
	}
	if len(rep.FoodItems) != len(food.Catalog) {
		t.Errorf("food items should still cover the catalog, got %d", len(rep.FoodItems))
	}
	if len(rep.Slips) != 0 || len(rep.Segments) != 0 {
		t.Errorf("expected empty slips and segments, got %d and %d", len(rep.Slips), len(rep.Segments))
	}
}

func TestRecentDates(t *testing.T) {
	svc := newTestService()

	dates, err := svc.RecentDates(context.Background(), 2)
	if err != nil {
		t.Fatalf("RecentDates failed: %v", err)
	}
	want := []string{"2025-06-10", "2025-06-09"}
	if len(dates) != len(want) {
		t.Fatalf("got %d dates, want %d", len(dates), len(want))
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("dates[%d] = %q, want %q (newest first)", i, dates[i], want[i])
		}
	}
}

func TestDailySeriesAscending(t *testing.T) {
	svc := newTestService()

	points, err := svc.DailySeries(context.Background(), 7)
	if err != nil {
		t.Fatalf("DailySeries failed: %v", err)
	}

	want := []SeriesPoint{
		{BusinessDate: "2025-06-07", TotalSales: 2000, TotalCustomers: 2},
		{BusinessDate: "2025-06-09", TotalSales: 8000, TotalCustomers: 4},
		{BusinessDate: "2025-06-10", TotalSales: 1500, TotalCustomers: 3},
	}
	if len(points) != len(want) {
		t.Fatalf("got %d points, want %d", len(points), len(want))
	}
	for i := range want {
		if points[i] != want[i] {
			t.Errorf("points[%d] = %+v, want %+v (oldest first)", i, points[i], want[i])
		}
	}
}

func TestFoodWindowSumsOnlyRecordedDays(t *testing.T) {
	svc := newTestService()

	items, err := svc.FoodWindow(context.Background(), 7)
	if err != nil {
		t.Fatalf("FoodWindow failed: %v", err)
	}

	want := map[string]int{"steak": 5, "burger": 1, "shrimp": 4}
	for _, item := range items {
		if item.Quantity != want[item.Key] {
			t.Errorf("%s = %d, want %d", item.Key, item.Quantity, want[item.Key])
		}
	}
}

func TestFoodWindowHonorsLimit(t *testing.T) {
	svc := newTestService()

	// Window of 2 should cover only the two most recent recorded days.
	items, err := svc.FoodWindow(context.Background(), 2)
	if err != nil {
		t.Fatalf("FoodWindow failed: %v", err)
	}

	want := map[string]int{"steak": 5, "burger": 1, "shrimp": 0}
	for _, item := range items {
		if item.Quantity != want[item.Key] {
			t.Errorf("%s = %d, want %d", item.Key, item.Quantity, want[item.Key])
		}
	}
}
