package rider_available_orders_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"foodnow/internal/dto"
	"foodnow/internal/entities"
	"foodnow/internal/service/matching"
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

	riderLocation, err := parseLocation(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	opts, err := parseOptions(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	candidates, err := h.service.FindCandidates(r.Context(), riderID, riderLocation, opts)
	if err != nil {
		switch {
		case errors.Is(err, matching.ErrInvalidRiderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, matching.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.AvailableOrders{
		Orders: make([]dto.OrderCandidate, 0, len(candidates)),
		Count:  len(candidates),
	}
	for _, c := range candidates {
		response.Orders = append(response.Orders, dto.OrderCandidate{
			OrderID:              c.OrderID,
			RestaurantID:         c.RestaurantID,
			RestaurantName:       c.RestaurantName,
			DeliveryArea:         c.DeliveryArea,
			ItemCount:            c.ItemCount,
			TotalAmount:          c.TotalAmount,
			DistanceKm:           c.DistanceKm,
			DistanceDisplay:      c.DistanceDisplay,
			EstimatedEarnings:    c.EstimatedEarnings,
			EstimatedTimeMinutes: c.EstimatedTimeMinutes,
			TimeDisplay:          c.TimeDisplay,
			Priority:             c.Priority.String(),
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

// parseLocation reads the optional lat/lng pair. Supplying only one half of
// the pair is a client error.
func parseLocation(r *http.Request) (*entities.GeoPoint, error) {
	latStr := r.URL.Query().Get("lat")
	lngStr := r.URL.Query().Get("lng")

	if latStr == "" && lngStr == "" {
		return nil, nil
	}
	if latStr == "" || lngStr == "" {
		return nil, errors.New("lat and lng must be supplied together")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, err
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil, err
	}

	return &entities.GeoPoint{Latitude: lat, Longitude: lng}, nil
}

func parseOptions(r *http.Request) (matching.Options, error) {
	var opts matching.Options

	if maxKmStr := r.URL.Query().Get("max_km"); maxKmStr != "" {
		maxKm, err := strconv.ParseFloat(maxKmStr, 64)
		if err != nil || maxKm <= 0 {
			return opts, errors.New("invalid max_km")
		}
		opts.MaxDistanceKm = maxKm
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			return opts, errors.New("invalid limit")
		}
		opts.MaxCandidates = limit
	}

	return opts, nil
}
