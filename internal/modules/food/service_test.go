package food

import (
	"context"
	"sort"
	"testing"
	"time"
)

// fakeRepo keys stored counts by (date, item) like the real table.
type fakeRepo struct {
	counts map[string]map[string]int // date → item → quantity
}

func newFakeRepo() *fakeRepo { return &fakeRepo{counts: make(map[string]map[string]int)} }

func (f *fakeRepo) Upsert(_ context.Context, c *Count) error {
	day, ok := f.counts[c.BusinessDate]
	if !ok {
		day = make(map[string]int)
		f.counts[c.BusinessDate] = day
	}
	day[c.ItemKey] = c.Quantity
	return nil
}

func (f *fakeRepo) CountsForDate(_ context.Context, date string) (map[string]int, error) {
	out := make(map[string]int)
	for k, v := range f.counts[date] {
		out[k] = v
	}
	return out, nil
}

func (f *fakeRepo) RecentDays(_ context.Context, limit int) ([]DayCounts, error) {
	var dates []string
	for d := range f.counts {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) > limit {
		dates = dates[:limit]
	}
	var days []DayCounts
	for _, d := range dates {
		m := make(map[string]int)
		for k, v := range f.counts[d] {
			m[k] = v
		}
		days = append(days, DayCounts{BusinessDate: d, Counts: m})
	}
	return days, nil
}

func testClock(value string) func() time.Time {
	ts, _ := time.Parse("2006-01-02 15:04", value)
	return func() time.Time { return ts }
}

func TestSaveCounts(t *testing.T) {
	repo := newFakeRepo()
	svc := &service{repo: repo, now: testClock("2025-06-10 21:00")}

	date, err := svc.SaveCounts(context.Background(), SaveCountsRequest{
		Counts: map[string]string{
			"steak":    "3",
			"burger":   "junk",    // coerces to 0
			"shrimp":   "",        // empty coerces to 0
			"lobster":  "9",       // not in the catalog, ignored
			"sandwich": "2",
		},
	})
	if err != nil {
		t.Fatalf("SaveCounts failed: %v", err)
	}
	if date != "2025-06-10" {
		t.Fatalf("resolved date = %q, want 2025-06-10", date)
	}

	items, err := svc.ItemsForDate(context.Background(), date)
	if err != nil {
		t.Fatalf("ItemsForDate failed: %v", err)
	}
	if len(items) != len(Catalog) {
		t.Fatalf("got %d items, want full catalog of %d", len(items), len(Catalog))
	}

	want := map[string]int{"steak": 3, "beef_cube": 0, "beef_skewer": 0, "burger": 0, "sandwich": 2, "shrimp": 0}
	for i, item := range items {
		if item.Key != Catalog[i].Key {
			t.Errorf("item %d key = %q, want catalog order %q", i, item.Key, Catalog[i].Key)
		}
		if item.Quantity != want[item.Key] {
			t.Errorf("%s quantity = %d, want %d", item.Key, item.Quantity, want[item.Key])
		}
	}

	if _, ok := repo.counts["2025-06-10"]["lobster"]; ok {
		t.Error("non-catalog key was persisted")
	}
}

func TestSaveCountsReplacesNotAccumulates(t *testing.T) {
	svc := &service{repo: newFakeRepo(), now: testClock("2025-06-10 21:00")}

	if _, err := svc.SaveCounts(context.Background(), SaveCountsRequest{
		Counts: map[string]string{"steak": "5"},
	}); err != nil {
		t.Fatalf("first SaveCounts failed: %v", err)
	}
	if _, err := svc.SaveCounts(context.Background(), SaveCountsRequest{
		Counts: map[string]string{"steak": "2"},
	}); err != nil {
		t.Fatalf("second SaveCounts failed: %v", err)
	}

	items, err := svc.ItemsForDate(context.Background(), "2025-06-10")
	if err != nil {
		t.Fatalf("ItemsForDate failed: %v", err)
	}
	for _, item := range items {
		if item.Key == "steak" && item.Quantity != 2 {
			t.Errorf("steak quantity = %d, want the replacing value 2", item.Quantity)
		}
	}
}

func TestItemsForDateWithoutRows(t *testing.T) {
	svc := &service{repo: newFakeRepo(), now: testClock("2025-06-10 21:00")}

	items, err := svc.ItemsForDate(context.Background(), "2025-01-01")
	if err != nil {
		t.Fatalf("ItemsForDate failed: %v", err)
	}
	if len(items) != len(Catalog) {
		t.Fatalf("got %d items, want %d", len(items), len(Catalog))
	}
	for _, item := range items {
		if item.Quantity != 0 {
			t.Errorf("%s quantity = %d, want 0 for a date without records", item.Key, item.Quantity)
		}
	}
}
