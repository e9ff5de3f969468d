package orderstatus

import "foodnow/internal/entities"

// transitionTable lists the permitted next statuses per current status.
// The rider-side terminal segment (picked_up onward) is intentionally absent:
// those statuses exist but their edges are not enforceable here yet.
var transitionTable = map[entities.OrderStatusType][]entities.OrderStatusType{
	entities.OrderPending:   {entities.OrderConfirmed, entities.OrderCancelled},
	entities.OrderConfirmed: {entities.OrderPreparing, entities.OrderCancelled},
	entities.OrderPreparing: {entities.OrderReady, entities.OrderCancelled},
	entities.OrderReady:     {entities.OrderPickedUp},
}

func canTransition(from, to entities.OrderStatusType) bool {
	for _, next := range transitionTable[from] {
		if next == to {
			return true
		}
	}
	return false
}

// roleAllows gates edges per actor. The ready to picked_up edge belongs to the rider;
// the restaurant must not be able to drive it even though it is in the table.
func roleAllows(role entities.ActorRole, from, to entities.OrderStatusType) bool {
	switch role {
	case entities.ActorRestaurant:
		switch to {
		case entities.OrderConfirmed, entities.OrderPreparing, entities.OrderReady, entities.OrderCancelled:
			return true
		default:
			return false
		}
	case entities.ActorRider:
		return from == entities.OrderReady && to == entities.OrderPickedUp
	case entities.ActorSystem:
		return true
	default:
		return false
	}
}
