package rider

import "foodnow/internal/entities"

func ToDomain(r *RiderDB) *entities.Rider {
	if r == nil {
		return nil
	}
	riderEntity := &entities.Rider{
		ID:        r.ID,
		Name:      r.Name,
		Phone:     r.Phone,
		Status:    entities.RiderStatusType(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.LastLatitude != nil && r.LastLongitude != nil {
		riderEntity.LastLocation = &entities.GeoPoint{
			Latitude:  *r.LastLatitude,
			Longitude: *r.LastLongitude,
		}
	}
	return riderEntity
}

func ToAvailableOrderDomain(o *AvailableOrderDB) entities.AvailableOrder {
	orderEntity := entities.AvailableOrder{
		OrderID:        o.OrderID,
		RestaurantID:   o.RestaurantID,
		RestaurantName: o.RestaurantName,
		DeliveryArea:   o.DeliveryArea,
		ItemCount:      o.ItemCount,
		TotalAmount:    o.TotalAmount,
		CreatedAt:      o.CreatedAt,
	}
	if o.Latitude != nil && o.Longitude != nil {
		orderEntity.Location = &entities.GeoPoint{
			Latitude:  *o.Latitude,
			Longitude: *o.Longitude,
		}
	}
	return orderEntity
}
