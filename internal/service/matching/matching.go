package matching

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"foodnow/internal/entities"
	"foodnow/pkg/geo"
)

// Config carries every matching constant so deployments can tune them and
// tests can pin them. Nothing in this package hardcodes a coordinate or rate.
type Config struct {
	// EarningsRate is the fraction of the order total paid to the rider.
	EarningsRate float64
	// MinutesPerKm and PrepMinutes feed the time estimate; estimates never
	// drop below MinEstimateMinutes.
	MinutesPerKm       float64
	PrepMinutes        float64
	MinEstimateMinutes int
	// DefaultLocation is used when neither the request nor the rider profile
	// carries coordinates.
	DefaultLocation entities.GeoPoint
	MaxDistanceKm   float64
	MaxCandidates   int
	// PoolLimit bounds how many assignable orders are read per request.
	PoolLimit int
}

type Scorer struct {
	repository Repository
	cfg        Config
}

func New(repository Repository, cfg Config) *Scorer {
	return &Scorer{
		repository: repository,
		cfg:        cfg,
	}
}

// Options overrides the configured caps for one request. Zero values keep the
// configured defaults.
type Options struct {
	MaxCandidates int
	MaxDistanceKm float64
}

// FindCandidates returns the rider's ranked view of assignable orders:
// distance-filtered, annotated with earnings/time estimates and a priority
// bucket, sorted by priority then proximity, capped. An empty pool or an empty
// result is not an error.
func (s *Scorer) FindCandidates(ctx context.Context, riderID string, riderLocation *entities.GeoPoint, opts Options) ([]entities.OrderCandidate, error) {
	if strings.TrimSpace(riderID) == "" {
		return nil, ErrInvalidRiderID
	}

	rider, err := s.repository.GetRiderByID(ctx, riderID)
	if err != nil {
		return nil, fmt.Errorf("get rider %s: %w", riderID, err)
	}

	origin := s.resolveOrigin(riderLocation, rider)

	maxCandidates := s.cfg.MaxCandidates
	if opts.MaxCandidates > 0 {
		maxCandidates = opts.MaxCandidates
	}
	maxDistanceKm := s.cfg.MaxDistanceKm
	if opts.MaxDistanceKm > 0 {
		maxDistanceKm = opts.MaxDistanceKm
	}

	pool, err := s.repository.ListAvailableOrders(ctx, s.cfg.PoolLimit)
	if err != nil {
		return nil, fmt.Errorf("list available orders: %w", err)
	}

	candidates := make([]entities.OrderCandidate, 0, len(pool))
	for _, available := range pool {
		if available.Location == nil {
			// restaurants without coordinates cannot be ranked
			continue
		}

		distanceKm := geo.HaversineKm(
			geo.Point{Latitude: origin.Latitude, Longitude: origin.Longitude},
			geo.Point{Latitude: available.Location.Latitude, Longitude: available.Location.Longitude},
		)
		if distanceKm > maxDistanceKm {
			continue
		}

		candidates = append(candidates, s.score(available, distanceKm))
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		ri, rj := priorityRank(candidates[i].Priority), priorityRank(candidates[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return candidates[i].DistanceKm < candidates[j].DistanceKm
	})

	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	return candidates, nil
}

func (s *Scorer) resolveOrigin(requested *entities.GeoPoint, rider *entities.Rider) entities.GeoPoint {
	if requested != nil {
		return *requested
	}
	if rider.LastLocation != nil {
		return *rider.LastLocation
	}
	return s.cfg.DefaultLocation
}

func (s *Scorer) score(available entities.AvailableOrder, distanceKm float64) entities.OrderCandidate {
	minutes := int(math.Round(distanceKm*s.cfg.MinutesPerKm + s.cfg.PrepMinutes))
	if minutes < s.cfg.MinEstimateMinutes {
		minutes = s.cfg.MinEstimateMinutes
	}

	return entities.OrderCandidate{
		AvailableOrder: available,

		DistanceKm:           distanceKm,
		DistanceDisplay:      fmt.Sprintf("%.1f km", distanceKm),
		EstimatedEarnings:    math.Round(available.TotalAmount * s.cfg.EarningsRate),
		EstimatedTimeMinutes: minutes,
		TimeDisplay:          fmt.Sprintf("%d min", minutes),
		Priority:             priorityFor(distanceKm),
	}
}

func priorityFor(distanceKm float64) entities.PriorityType {
	switch {
	case distanceKm <= 5:
		return entities.PriorityHigh
	case distanceKm <= 10:
		return entities.PriorityMedium
	default:
		return entities.PriorityLow
	}
}

func priorityRank(p entities.PriorityType) int {
	switch p {
	case entities.PriorityHigh:
		return 0
	case entities.PriorityMedium:
		return 1
	default:
		return 2
	}
}
