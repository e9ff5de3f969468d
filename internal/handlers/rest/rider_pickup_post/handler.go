package rider_pickup_post

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

const riderIDHeader = "X-Rider-ID"

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
	riderID := r.Header.Get(riderIDHeader)
	if riderID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	req := orderstatus.TransitionRequest{
		OrderID:   mux.Vars(r)["id"],
		Status:    entities.OrderPickedUp,
		ActorRole: entities.ActorRider,
		ScopeID:   riderID,
	}

	orderEntity, err := h.service.RequestTransition(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response := dto.Order{
		ID:           orderEntity.ID,
		RestaurantID: orderEntity.RestaurantID,
		CustomerID:   orderEntity.CustomerID,
		Status:       orderEntity.Status.String(),
		TotalAmount:  orderEntity.TotalAmount,
		ItemCount:    orderEntity.ItemCount,
		DeliveryArea: orderEntity.DeliveryArea,
		PickedUpAt:   orderEntity.PickedUpAt,
		CreatedAt:    orderEntity.CreatedAt,
	}
	for _, e := range orderEntity.TrackingUpdates {
		response.TrackingUpdates = append(response.TrackingUpdates, dto.TrackingEvent{
			Status:    e.Status.String(),
			Timestamp: e.Timestamp,
			Message:   e.Message,
			Location:  e.Location,
			UpdatedBy: e.UpdatedBy.String(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
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
