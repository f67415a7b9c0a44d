package report

import (
	"github.com/hinode-pos/hinode-backend/internal/modules/food"
	"github.com/hinode-pos/hinode-backend/internal/modules/shift"
	"github.com/hinode-pos/hinode-backend/internal/modules/slip"
)

// Summary holds the headline figures for one business day.
type Summary struct {
	TotalSales     int `json:"total_sales"`
	TotalCustomers int `json:"total_customers"`
	TotalTables    int `json:"total_tables"`
	AvgPerCustomer int `json:"avg_per_customer"`
}

// PaymentTotal is one payment method's share of a day's sales. Breakdowns
// always contain every method in fixed order, zero-filled.
type PaymentTotal struct {
	Key    slip.PaymentMethod `json:"key"`
	Label  string             `json:"label"`
	Amount int                `json:"amount"`
}

// SlipLine is a slip decorated with its HH:MM clock time for display.
type SlipLine struct {
	slip.Slip
	Time string `json:"time"`
}

// DailyReport is the full dashboard payload for one business day.
type DailyReport struct {
	BusinessDate   string              `json:"business_date"`
	Summary        Summary             `json:"summary"`
	PaymentSummary []PaymentTotal      `json:"payment_summary"`
	FoodItems      []food.ItemQuantity `json:"food_items"`
	Slips          []SlipLine          `json:"slips"`
	Segments       []*shift.Segment    `json:"segments"`
}

// SeriesPoint is one business day in the sales/customers trend feed.
type SeriesPoint struct {
	BusinessDate   string `json:"business_date"`
	TotalSales     int    `json:"total_sales"`
	TotalCustomers int    `json:"total_customers"`
}
