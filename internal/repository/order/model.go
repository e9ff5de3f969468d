package order

import "time"

type OrderDB struct {
	ID                 string
	RestaurantID       string
	CustomerID         string
	Status             string
	TotalAmount        float64
	ItemCount          int
	DeliveryArea       string
	TrackingUpdates    []byte
	ConfirmedAt        *time.Time
	StartedPreparingAt *time.Time
	ReadyAt            *time.Time
	PickedUpAt         *time.Time
	CancelledAt        *time.Time
	CancellationReason *string
	CreatedAt          time.Time
}

// TrackingEventDB is the shape of one element of the tracking_updates jsonb
// column.
type TrackingEventDB struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Location  string    `json:"location"`
	UpdatedBy string    `json:"updated_by"`
}
