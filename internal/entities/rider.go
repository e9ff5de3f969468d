package entities

import "time"

type Rider struct {
	ID           string
	Name         string
	Phone        string
	Status       RiderStatusType
	LastLocation *GeoPoint
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RiderStatusType string

const (
	RiderAvailable RiderStatusType = "available"
	RiderBusy      RiderStatusType = "busy"
	RiderOffline   RiderStatusType = "offline"
)

func (t RiderStatusType) String() string {
	return string(t)
}

type GeoPoint struct {
	Latitude  float64
	Longitude float64
}
