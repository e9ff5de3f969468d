package entities

import "time"

type Order struct {
	ID                 string
	RestaurantID       string
	CustomerID         string
	Status             OrderStatusType
	TotalAmount        float64
	ItemCount          int
	DeliveryArea       string
	TrackingUpdates    []TrackingEvent
	ConfirmedAt        *time.Time
	StartedPreparingAt *time.Time
	ReadyAt            *time.Time
	PickedUpAt         *time.Time
	CancelledAt        *time.Time
	CancellationReason string
	CreatedAt          time.Time
}

type OrderStatusType string

const (
	OrderPending        OrderStatusType = "pending"
	OrderConfirmed      OrderStatusType = "confirmed"
	OrderPreparing      OrderStatusType = "preparing"
	OrderReady          OrderStatusType = "ready"
	OrderPickedUp       OrderStatusType = "picked_up"
	OrderOutForDelivery OrderStatusType = "out_for_delivery"
	OrderDelivered      OrderStatusType = "delivered"
	OrderCompleted      OrderStatusType = "completed"
	OrderCancelled      OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type ActorRole string

const (
	ActorRestaurant ActorRole = "restaurant"
	ActorRider      ActorRole = "rider"
	ActorSystem     ActorRole = "system"
)

func (r ActorRole) String() string {
	return string(r)
}

// TrackingEvent is immutable once appended to an order's history.
type TrackingEvent struct {
	Status    OrderStatusType
	Timestamp time.Time
	Message   string
	Location  string
	UpdatedBy ActorRole
}

// StatusUpdate describes one status transition to be persisted atomically:
// the new status, its timestamp column and the appended tracking event must
// land in a single conditional write keyed on ExpectedStatus.
type StatusUpdate struct {
	OrderID            string
	ExpectedStatus     OrderStatusType
	NewStatus          OrderStatusType
	ConfirmedAt        *time.Time
	StartedPreparingAt *time.Time
	ReadyAt            *time.Time
	PickedUpAt         *time.Time
	CancelledAt        *time.Time
	CancellationReason *string
	RiderID            *string
	Event              TrackingEvent
}
