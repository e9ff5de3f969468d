// Package dto holds the wire shapes of the REST API. They are kept apart
// from the domain entities so the JSON contract can evolve independently.
package dto

import (
	"encoding/json"
	"net/http"
	"time"
)

type StatusUpdateRequest struct {
	Status string  `json:"status"`
	Reason *string `json:"reason,omitempty"`
}

type TrackingEvent struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Location  string    `json:"location,omitempty"`
	UpdatedBy string    `json:"updated_by"`
}

type Order struct {
	ID                 string          `json:"id"`
	RestaurantID       string          `json:"restaurant_id"`
	CustomerID         string          `json:"customer_id"`
	Status             string          `json:"status"`
	TotalAmount        float64         `json:"total_amount"`
	ItemCount          int             `json:"item_count"`
	DeliveryArea       string          `json:"delivery_area"`
	TrackingUpdates    []TrackingEvent `json:"tracking_updates"`
	ConfirmedAt        *time.Time      `json:"confirmed_at,omitempty"`
	StartedPreparingAt *time.Time      `json:"started_preparing_at,omitempty"`
	ReadyAt            *time.Time      `json:"ready_at,omitempty"`
	PickedUpAt         *time.Time      `json:"picked_up_at,omitempty"`
	CancelledAt        *time.Time      `json:"cancelled_at,omitempty"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

type OrderCandidate struct {
	OrderID              string  `json:"order_id"`
	RestaurantID         string  `json:"restaurant_id"`
	RestaurantName       string  `json:"restaurant_name"`
	DeliveryArea         string  `json:"delivery_area"`
	ItemCount            int     `json:"item_count"`
	TotalAmount          float64 `json:"total_amount"`
	DistanceKm           float64 `json:"distance_km"`
	DistanceDisplay      string  `json:"distance_display"`
	EstimatedEarnings    float64 `json:"estimated_earnings"`
	EstimatedTimeMinutes int     `json:"estimated_time_minutes"`
	TimeDisplay          string  `json:"time_display"`
	Priority             string  `json:"priority"`
}

type AvailableOrders struct {
	Orders []OrderCandidate `json:"orders"`
	Count  int              `json:"count"`
}

type Ping struct {
	Message string `json:"message"`
}

// InvalidTransition is the error body returned when a status change is
// rejected by the transition rules. It names both sides of the conflict so
// clients can resync without an extra read.
type InvalidTransition struct {
	Error           string `json:"error"`
	CurrentStatus   string `json:"current_status"`
	RequestedStatus string `json:"requested_status"`
}

// WriteInvalidTransition renders the 400 body for a rejected transition. Both
// transition endpoints answer with the same shape, so it lives here rather
// than in either handler. The returned error is the encoder's.
func WriteInvalidTransition(w http.ResponseWriter, current, requested string) error {
	body := InvalidTransition{
		Error:           "invalid status transition",
		CurrentStatus:   current,
		RequestedStatus: requested,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	return json.NewEncoder(w).Encode(body)
}
