// Package deliveryrequestrepo provides data transfer objects and mapping
// functions for delivery request persistence. This package implements the
// repository pattern for the delivery request aggregate, handling the
// conversion between domain entities and database representations.
package deliveryrequestrepo

import (
	"database/sql/driver"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/deliveryrequest"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// DeliveryRequestDTO represents the database structure for persisting
// delivery request aggregates. The deliveryId business key carries a unique
// index so duplicate creates fail at the store even under concurrency.
type DeliveryRequestDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	DeliveryID  string      `gorm:"uniqueIndex;not null"`
	OrderID     string      `gorm:"not null"`
	DriverID    *int64      `gorm:"index"`
	Pickup      LocationDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Dropoff     LocationDTO `gorm:"embedded;embeddedPrefix:dropoff_"`
	Route       RouteDTO    `gorm:"type:jsonb"`
	Status      string      `gorm:"index;not null"`
	DriverNotes string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for delivery request entities.
// Overrides GORM's default naming convention to use "delivery_requests".
func (DeliveryRequestDTO) TableName() string {
	return "delivery_requests"
}

// LocationDTO represents embedded geographic coordinates within the
// delivery request table.
type LocationDTO struct {
	Lat     float64 `gorm:"type:double precision"`
	Lng     float64 `gorm:"type:double precision"`
	Address string
}

// RoutePointDTO is one waypoint of the planned route as serialized into the
// route JSONB column.
type RoutePointDTO struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

// RouteDTO stores the ordered waypoint list as a single JSONB value.
type RouteDTO []RoutePointDTO

// Value serializes the route for storage.
func (r RouteDTO) Value() (driver.Value, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan deserializes the route from its stored JSONB representation.
func (r *RouteDTO) Scan(value any) error {
	if value == nil {
		*r = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return fmt.Errorf("unsupported route column type %T", value)
	}
}

// fromDomain converts a delivery request aggregate to its database
// representation. A zero aggregate ID maps to uuid.Nil and is assigned by
// the repository on insert.
func fromDomain(request *deliveryrequest.DeliveryRequest) DeliveryRequestDTO {
	return DeliveryRequestDTO{
		ID:         request.ID().Bytes(),
		DeliveryID: request.DeliveryID(),
		OrderID:    request.OrderID(),
		DriverID:   request.DriverID(),
		Pickup:     locationFromDomain(request.Pickup()),
		Dropoff:    locationFromDomain(request.Dropoff()),
		Route: lo.Map(request.Route(), func(waypoint kernel.Location, _ int) RoutePointDTO {
			return RoutePointDTO{
				Lat:     waypoint.Lat(),
				Lng:     waypoint.Lng(),
				Address: waypoint.Address(),
			}
		}),
		Status:      request.Status().String(),
		DriverNotes: request.DriverNotes(),
		CreatedAt:   request.CreatedAt(),
		UpdatedAt:   request.UpdatedAt(),
	}
}

func locationFromDomain(location kernel.Location) LocationDTO {
	return LocationDTO{
		Lat:     location.Lat(),
		Lng:     location.Lng(),
		Address: location.Address(),
	}
}

// toDomain converts a database DTO to a delivery request aggregate.
// Reconstructs the complete aggregate via RestoreDeliveryRequest.
func toDomain(dto DeliveryRequestDTO) (*deliveryrequest.DeliveryRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	pickup, err := locationToDomain(dto.Pickup)
	if err != nil {
		return nil, err
	}

	dropoff, err := locationToDomain(dto.Dropoff)
	if err != nil {
		return nil, err
	}

	route := make([]kernel.Location, 0, len(dto.Route))
	for _, point := range dto.Route {
		waypoint, locErr := kernel.NewLocation(point.Lat, point.Lng, point.Address)
		if locErr != nil {
			return nil, locErr
		}
		route = append(route, waypoint)
	}

	return deliveryrequest.RestoreDeliveryRequest(
		id,
		dto.DeliveryID,
		dto.OrderID,
		pickup,
		dropoff,
		route,
		dto.DriverID,
		deliveryrequest.Status(dto.Status),
		dto.DriverNotes,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}

func locationToDomain(dto LocationDTO) (kernel.Location, error) {
	return kernel.NewLocation(dto.Lat, dto.Lng, dto.Address)
}
