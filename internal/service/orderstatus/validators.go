package orderstatus

import (
	"strings"

	"foodnow/internal/entities"
)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidStatus(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderPending,
		entities.OrderConfirmed,
		entities.OrderPreparing,
		entities.OrderReady,
		entities.OrderPickedUp,
		entities.OrderOutForDelivery,
		entities.OrderDelivered,
		entities.OrderCompleted,
		entities.OrderCancelled:
		return true
	default:
		return false
	}
}

func isValidActorRole(role entities.ActorRole) bool {
	switch role {
	case entities.ActorRestaurant, entities.ActorRider, entities.ActorSystem:
		return true
	default:
		return false
	}
}
