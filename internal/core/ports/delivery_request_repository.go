package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/deliveryrequest"
)

// DeliveryRequestRepository defines the persistence contract for delivery
// request aggregates. The store owns the persisted records; the service holds
// no cached copies and re-reads through this port on every operation.
type DeliveryRequestRepository interface {
	// Add persists a new delivery request and assigns its store identifier.
	// The aggregate must be valid. A uniqueness violation on the deliveryId
	// business key is reported as errs.ErrObjectAlreadyExists; this is the
	// store-level backstop behind the service's existence check.
	Add(ctx context.Context, aggregate *deliveryrequest.DeliveryRequest) error

	// GetByDeliveryID retrieves a delivery request by its business key.
	// Returns errs.ErrObjectNotFound when no record matches, distinctly from
	// store-connectivity failures which are returned verbatim.
	GetByDeliveryID(ctx context.Context, deliveryID string) (*deliveryrequest.DeliveryRequest, error)

	// UpdateDispatched atomically assigns a driver to the single record whose
	// deliveryId matches and whose status is still pending: it sets driverId,
	// status=dispatched, updatedAt, and overwrites driverNotes only when
	// notes is non-empty. The pending condition is part of the update filter,
	// so the returned matched count (0 or 1) is the atomicity guarantee: 0
	// means the record was concurrently dispatched or removed between the
	// caller's read and this write.
	UpdateDispatched(
		ctx context.Context,
		deliveryID string,
		driverID int64,
		notes string,
		now time.Time,
	) (int64, error)
}
