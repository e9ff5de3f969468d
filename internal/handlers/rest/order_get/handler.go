package order_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"foodnow/internal/dto"
	"foodnow/internal/entities"
	"foodnow/internal/service/orderstatus"
	"foodnow/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderEntity, err := h.service.GetOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, orderstatus.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, orderstatus.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(toOrderDTO(orderEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toOrderDTO(o *entities.Order) dto.Order {
	events := make([]dto.TrackingEvent, 0, len(o.TrackingUpdates))
	for _, e := range o.TrackingUpdates {
		events = append(events, dto.TrackingEvent{
			Status:    e.Status.String(),
			Timestamp: e.Timestamp,
			Message:   e.Message,
			Location:  e.Location,
			UpdatedBy: e.UpdatedBy.String(),
		})
	}

	return dto.Order{
		ID:                 o.ID,
		RestaurantID:       o.RestaurantID,
		CustomerID:         o.CustomerID,
		Status:             o.Status.String(),
		TotalAmount:        o.TotalAmount,
		ItemCount:          o.ItemCount,
		DeliveryArea:       o.DeliveryArea,
		TrackingUpdates:    events,
		ConfirmedAt:        o.ConfirmedAt,
		StartedPreparingAt: o.StartedPreparingAt,
		ReadyAt:            o.ReadyAt,
		PickedUpAt:         o.PickedUpAt,
		CancelledAt:        o.CancelledAt,
		CancellationReason: o.CancellationReason,
		CreatedAt:          o.CreatedAt,
	}
}
