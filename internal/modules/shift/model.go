package shift

import "github.com/google/uuid"

// Segment is one staff member's assigned time range within a business day.
// Start and end are local "HH:MM" strings; ranges are stored as given
// without overlap or ordering checks.
type Segment struct {
	ID           uuid.UUID `json:"id"`
	BusinessDate string    `json:"business_date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	StaffName    string    `json:"staff_name"`
	CreatedAt    string    `json:"created_at"`
}

// CreateSegmentRequest is the payload for adding a segment.
type CreateSegmentRequest struct {
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	StaffName    string `json:"staff_name"`
	BusinessDate string `json:"business_date,omitempty"`
}
