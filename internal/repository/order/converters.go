package order

import (
	"encoding/json"
	"fmt"

	"foodnow/internal/entities"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	var eventsDB []TrackingEventDB
	if len(o.TrackingUpdates) > 0 {
		if err := json.Unmarshal(o.TrackingUpdates, &eventsDB); err != nil {
			return nil, fmt.Errorf("decode tracking updates for order %s: %w", o.ID, err)
		}
	}

	events := make([]entities.TrackingEvent, 0, len(eventsDB))
	for _, e := range eventsDB {
		events = append(events, entities.TrackingEvent{
			Status:    entities.OrderStatusType(e.Status),
			Timestamp: e.Timestamp,
			Message:   e.Message,
			Location:  e.Location,
			UpdatedBy: entities.ActorRole(e.UpdatedBy),
		})
	}

	orderEntity := &entities.Order{
		ID:                 o.ID,
		RestaurantID:       o.RestaurantID,
		CustomerID:         o.CustomerID,
		Status:             entities.OrderStatusType(o.Status),
		TotalAmount:        o.TotalAmount,
		ItemCount:          o.ItemCount,
		DeliveryArea:       o.DeliveryArea,
		TrackingUpdates:    events,
		ConfirmedAt:        o.ConfirmedAt,
		StartedPreparingAt: o.StartedPreparingAt,
		ReadyAt:            o.ReadyAt,
		PickedUpAt:         o.PickedUpAt,
		CancelledAt:        o.CancelledAt,
		CreatedAt:          o.CreatedAt,
	}
	if o.CancellationReason != nil {
		orderEntity.CancellationReason = *o.CancellationReason
	}

	return orderEntity, nil
}

func FromDomainEvent(e entities.TrackingEvent) TrackingEventDB {
	return TrackingEventDB{
		Status:    e.Status.String(),
		Timestamp: e.Timestamp,
		Message:   e.Message,
		Location:  e.Location,
		UpdatedBy: e.UpdatedBy.String(),
	}
}
