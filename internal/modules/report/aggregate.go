package report

import (
	"github.com/hinode-pos/hinode-backend/internal/modules/food"
	"github.com/hinode-pos/hinode-backend/internal/modules/slip"
)

// The functions in this file are pure: they compute over the collections
// they are given, touch no storage and hold no state.

// Summarize derives the headline figures from one day's slips. Empty input
// yields an all-zero summary. The per-customer average is floor division.
func Summarize(slips []*slip.Slip) Summary {
	var s Summary
	for _, sl := range slips {
		s.TotalSales += sl.Amount
		s.TotalCustomers += sl.People
	}
	s.TotalTables = len(slips)
	if s.TotalCustomers > 0 {
		s.AvgPerCustomer = s.TotalSales / s.TotalCustomers
	}
	return s
}

// PaymentTotals groups slip amounts by payment method. The result always
// covers all five methods in fixed catalog order, zero-filled, so the
// presentation layer never has to special-case absent methods.
func PaymentTotals(slips []*slip.Slip) []PaymentTotal {
	byMethod := make(map[slip.PaymentMethod]int, len(slip.PaymentMethods))
	for _, sl := range slips {
		byMethod[sl.PaymentMethod] += sl.Amount
	}

	totals := make([]PaymentTotal, 0, len(slip.PaymentMethods))
	for _, m := range slip.PaymentMethods {
		totals = append(totals, PaymentTotal{
			Key:    m,
			Label:  slip.PaymentLabels[m],
			Amount: byMethod[m],
		})
	}
	return totals
}

// FoodTotals sums per-day quantities across the given days and expands the
// result over the full catalog, zero-filled. Days are summed as given: a
// caller asking for a 7-day window with only 3 recorded days gets exactly
// those 3 days' totals, with no zero-day padding.
func FoodTotals(days []food.DayCounts) []food.ItemQuantity {
	sums := make(map[string]int)
	for _, day := range days {
		for key, qty := range day.Counts {
			sums[key] += qty
		}
	}
	return food.FillCatalog(sums)
}
