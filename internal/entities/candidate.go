package entities

import "time"

// AvailableOrder is one row of the assignable-order pool: a ready, unassigned
// order joined with its restaurant's coordinates. Location is nil when the
// restaurant has no stored coordinates.
type AvailableOrder struct {
	OrderID        string
	RestaurantID   string
	RestaurantName string
	Location       *GeoPoint
	DeliveryArea   string
	ItemCount      int
	TotalAmount    float64
	CreatedAt      time.Time
}

type PriorityType string

const (
	PriorityHigh   PriorityType = "high"
	PriorityMedium PriorityType = "medium"
	PriorityLow    PriorityType = "low"
)

func (p PriorityType) String() string {
	return string(p)
}

// OrderCandidate is computed fresh per matching request and never persisted.
// Numeric fields and their display strings are populated from the same value;
// the rider app renders the strings and sorts on the numbers.
type OrderCandidate struct {
	AvailableOrder

	DistanceKm           float64
	DistanceDisplay      string
	EstimatedEarnings    float64
	EstimatedTimeMinutes int
	TimeDisplay          string
	Priority             PriorityType
}
