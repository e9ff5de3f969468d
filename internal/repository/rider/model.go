package rider

import "time"

type RiderDB struct {
	ID            string
	Name          string
	Phone         string
	Status        string
	LastLatitude  *float64
	LastLongitude *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type AvailableOrderDB struct {
	OrderID        string
	RestaurantID   string
	RestaurantName string
	Latitude       *float64
	Longitude      *float64
	DeliveryArea   string
	ItemCount      int
	TotalAmount    float64
	CreatedAt      time.Time
}
