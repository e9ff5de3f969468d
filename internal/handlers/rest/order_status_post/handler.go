package order_status_post

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

const restaurantIDHeader = "X-Restaurant-ID"

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
	restaurantID := r.Header.Get(restaurantIDHeader)
	if restaurantID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var updateDTO dto.StatusUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	req := orderstatus.TransitionRequest{
		OrderID:   mux.Vars(r)["id"],
		Status:    entities.OrderStatusType(updateDTO.Status),
		ActorRole: entities.ActorRestaurant,
		ScopeID:   restaurantID,
	}
	if updateDTO.Reason != nil {
		req.Reason = *updateDTO.Reason
	}

	orderEntity, err := h.service.RequestTransition(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
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

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var transitionErr *orderstatus.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		encodeErr := dto.WriteInvalidTransition(w, transitionErr.Current.String(), transitionErr.Requested.String())
		if encodeErr != nil {
			h.log.With(
				logger.NewField("error", encodeErr),
			).Error("encode JSON response")
		}
		return
	}

	switch {
	case errors.Is(err, orderstatus.ErrInvalidOrderID),
		errors.Is(err, orderstatus.ErrInvalidStatus),
		errors.Is(err, orderstatus.ErrInvalidTransition):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, orderstatus.ErrOrderNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, orderstatus.ErrUnauthorized):
		w.WriteHeader(http.StatusForbidden)
	default:
		w.WriteHeader(http.StatusInternalServerError)
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
