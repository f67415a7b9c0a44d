package food

// Item is one entry of the fixed menu catalog.
type Item struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Catalog is the fixed menu item catalog in presentation order.
var Catalog = []Item{
	{Key: "steak", Label: "牛排"},
	{Key: "beef_cube", Label: "牛肉粒"},
	{Key: "beef_skewer", Label: "牛肉串"},
	{Key: "burger", Label: "汉堡"},
	{Key: "sandwich", Label: "三明治"},
	{Key: "shrimp", Label: "虾"},
}

// InCatalog reports whether key is a known menu item.
func InCatalog(key string) bool {
	for _, item := range Catalog {
		if item.Key == key {
			return true
		}
	}
	return false
}

// Count is the persisted per-day quantity for one item.
type Count struct {
	BusinessDate string `json:"business_date"`
	ItemKey      string `json:"item_key"`
	Quantity     int    `json:"quantity"`
	UpdatedAt    string `json:"updated_at"`
}

// DayCounts carries one business date's quantities keyed by item.
type DayCounts struct {
	BusinessDate string
	Counts       map[string]int
}

// ItemQuantity pairs a catalog entry with a quantity for presentation.
// Lists of these always cover the full catalog, zero-filled.
type ItemQuantity struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Quantity int    `json:"quantity"`
}

// SaveCountsRequest is the payload for writing a day's quantities. Values
// arrive as strings straight from form input; anything unparseable is
// recorded as 0.
type SaveCountsRequest struct {
	BusinessDate string            `json:"business_date,omitempty"`
	Counts       map[string]string `json:"counts"`
}
