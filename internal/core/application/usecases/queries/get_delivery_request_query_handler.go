package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/deliveryrequest"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// routePointRow mirrors a waypoint as stored in the route JSONB column.
type routePointRow struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

// GetDeliveryRequestQueryHandler retrieves a delivery request record from the
// database. Reads bypass the aggregate and scan the stored row directly.
//
// Example:
//
//	handler := NewGetDeliveryRequestQueryHandler(db)
//	query, _ := NewGetDeliveryRequestQuery("d210")
//
//	record, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get delivery request: %v", err)
//	    return err
//	}
//
//	fmt.Printf("%s is %s\n", record.DeliveryID, record.Status)
type GetDeliveryRequestQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryRequestQueryHandler creates a handler for delivery request
// lookups. Requires a GORM database connection for query execution.
func NewGetDeliveryRequestQueryHandler(db *gorm.DB) GetDeliveryRequestQueryHandler {
	return GetDeliveryRequestQueryHandler{db: db}
}

// Handle executes the lookup by deliveryId. Returns errs.ErrObjectNotFound
// when no record carries the identifier.
func (h GetDeliveryRequestQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryRequestQuery,
) (GetDeliveryRequestQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryRequestQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			delivery_id,
			order_id,
			driver_id,
			pickup_lat, pickup_lng, pickup_address,
			dropoff_lat, dropoff_lng, dropoff_address,
			route,
			status,
			driver_notes,
			created_at,
			updated_at
		FROM delivery_requests
		WHERE delivery_id = ?
	`, query.DeliveryID()).Row()

	var (
		id                              uuid.UUID
		deliveryID, orderID             string
		driverID                        sql.NullInt64
		pickupLat, pickupLng            float64
		dropoffLat, dropoffLng          float64
		pickupAddress, dropoffAddress   string
		routeRaw                        []byte
		status, driverNotes             string
		createdAt, updatedAt            time.Time
	)

	err := row.Scan(
		&id,
		&deliveryID,
		&orderID,
		&driverID,
		&pickupLat, &pickupLng, &pickupAddress,
		&dropoffLat, &dropoffLng, &dropoffAddress,
		&routeRaw,
		&status,
		&driverNotes,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDeliveryRequestQueryResponse{}, errs.NewObjectNotFoundError("deliveryId", query.DeliveryID())
	}
	if err != nil {
		return GetDeliveryRequestQueryResponse{}, err
	}

	recordID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetDeliveryRequestQueryResponse{}, err
	}

	pickup, err := kernel.NewLocation(pickupLat, pickupLng, pickupAddress)
	if err != nil {
		return GetDeliveryRequestQueryResponse{}, err
	}

	dropoff, err := kernel.NewLocation(dropoffLat, dropoffLng, dropoffAddress)
	if err != nil {
		return GetDeliveryRequestQueryResponse{}, err
	}

	var points []routePointRow
	if err = json.Unmarshal(routeRaw, &points); err != nil {
		return GetDeliveryRequestQueryResponse{}, err
	}

	route := make([]kernel.Location, 0, len(points))
	for _, point := range points {
		waypoint, locErr := kernel.NewLocation(point.Lat, point.Lng, point.Address)
		if locErr != nil {
			return GetDeliveryRequestQueryResponse{}, locErr
		}
		route = append(route, waypoint)
	}

	return GetDeliveryRequestQueryResponse{
		ID:          recordID,
		DeliveryID:  deliveryID,
		OrderID:     orderID,
		DriverID:    nullableDriverID(driverID),
		Pickup:      pickup,
		Dropoff:     dropoff,
		Route:       route,
		Status:      deliveryrequest.Status(status),
		DriverNotes: driverNotes,
		CreatedAt:   createdAt.UTC(),
		UpdatedAt:   updatedAt.UTC(),
	}, nil
}

func nullableDriverID(driverID sql.NullInt64) *int64 {
	if !driverID.Valid {
		return nil
	}
	return lo.ToPtr(driverID.Int64)
}
