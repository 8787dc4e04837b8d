package deliveryrequest

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrDeliveryRequestIsNotConstructed is returned when a DeliveryRequest
// instance was not created through NewDeliveryRequest or
// RestoreDeliveryRequest. This ensures all requests are properly validated.
var ErrDeliveryRequestIsNotConstructed = errors.New(
	"DeliveryRequest must be created via NewDeliveryRequest or RestoreDeliveryRequest")

// DeliveryRequest is the aggregate root tracking a single shipment's pickup,
// dropoff, route and lifecycle status.
//
// DeliveryRequest maintains these invariants:
//   - deliveryID is the non-empty caller-supplied business key, unique across
//     all requests (uniqueness is enforced at the persistence boundary)
//   - orderID is non-empty free-form text
//   - pickup and dropoff are valid locations
//   - route holds at least one valid waypoint and is stored verbatim
//   - driverID is absent until dispatch, positive and immutable once set
//   - status follows the Status state machine (pending at creation)
//   - createdAt is set once; updatedAt is overwritten on every mutation
//
// The store-assigned id is empty on a freshly created aggregate and present
// only on instances restored from persistence.
type DeliveryRequest struct {
	id          kernel.UUID
	deliveryID  string
	orderID     string
	driverID    *int64
	pickup      kernel.Location
	dropoff     kernel.Location
	route       []kernel.Location
	status      Status
	driverNotes string
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewDeliveryRequest creates a new DeliveryRequest with validation. The
// request starts in pending status with no driver assigned, and
// createdAt == updatedAt == now (normalized to UTC). The store-assigned id
// is left empty; it is set by the repository on insert.
//
// driverNotes is optional and stored verbatim; route must contain at least
// one waypoint.
func NewDeliveryRequest(
	deliveryID string,
	orderID string,
	pickup kernel.Location,
	dropoff kernel.Location,
	route []kernel.Location,
	driverNotes string,
	now time.Time,
) (*DeliveryRequest, error) {
	request := &DeliveryRequest{
		status:        StatusPending,
		driverNotes:   driverNotes,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		request.setDeliveryID(deliveryID),
		request.setOrderID(orderID),
		request.setPickup(pickup),
		request.setDropoff(dropoff),
		request.setRoute(route),
	); err != nil {
		return nil, err
	}

	return request, nil
}

// RestoreDeliveryRequest rebuilds a DeliveryRequest from persistence.
// In addition to the construction rules it validates the store-assigned id,
// the status value, and the consistency between status and driver assignment
// (a pending request has no driver, a dispatched one does).
func RestoreDeliveryRequest(
	id kernel.UUID,
	deliveryID string,
	orderID string,
	pickup kernel.Location,
	dropoff kernel.Location,
	route []kernel.Location,
	driverID *int64,
	status Status,
	driverNotes string,
	createdAt time.Time,
	updatedAt time.Time,
) (*DeliveryRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveDriver(driverID != nil); err != nil {
		return nil, err
	}
	if driverID != nil && *driverID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("driverId",
			fmt.Errorf("%d is not greater than 0", *driverID))
	}

	request, err := NewDeliveryRequest(deliveryID, orderID, pickup, dropoff, route, driverNotes, createdAt)
	if err != nil {
		return nil, err
	}

	request.id = id
	request.driverID = driverID
	request.status = status
	request.createdAt = createdAt.UTC()
	request.updatedAt = updatedAt.UTC()
	return request, nil
}

// Validate ensures the DeliveryRequest was properly constructed through one
// of its constructors. This prevents bypassing validation by directly
// instantiating the struct.
func (r *DeliveryRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrDeliveryRequestIsNotConstructed
	}

	return nil
}

// IsEqual compares two requests by their deliveryId business key.
func (r *DeliveryRequest) IsEqual(other *DeliveryRequest) bool {
	return other != nil && r.deliveryID == other.deliveryID
}

// ID returns the store-assigned identifier. It is the zero UUID for a
// request that has not been persisted yet.
func (r *DeliveryRequest) ID() kernel.UUID {
	return r.id
}

// DeliveryID returns the caller-supplied unique business key.
func (r *DeliveryRequest) DeliveryID() string {
	return r.deliveryID
}

// OrderID returns the order reference.
func (r *DeliveryRequest) OrderID() string {
	return r.orderID
}

// DriverID returns the assigned driver's ID.
// Returns nil if no driver is assigned.
func (r *DeliveryRequest) DriverID() *int64 {
	return r.driverID
}

// Pickup returns the pickup location.
func (r *DeliveryRequest) Pickup() kernel.Location {
	return r.pickup
}

// Dropoff returns the dropoff location.
func (r *DeliveryRequest) Dropoff() kernel.Location {
	return r.dropoff
}

// Route returns the ordered waypoint sequence, exactly as supplied at
// creation.
func (r *DeliveryRequest) Route() []kernel.Location {
	return r.route
}

// Status returns the current lifecycle status.
func (r *DeliveryRequest) Status() Status {
	return r.status
}

// DriverNotes returns the driver notes, or "" when none were supplied.
func (r *DeliveryRequest) DriverNotes() string {
	return r.driverNotes
}

// CreatedAt returns the creation timestamp (UTC).
func (r *DeliveryRequest) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns the last mutation timestamp (UTC).
func (r *DeliveryRequest) UpdatedAt() time.Time {
	return r.updatedAt
}

// Dispatch assigns a driver to the request and transitions it to dispatched.
//
// This method enforces the following business rules:
//   - driverID must be positive
//   - the request must be in pending status; dispatching twice is a
//     conflict, never a silent no-op
//   - notes overwrite the existing driver notes only when non-empty;
//     empty notes leave the existing value untouched
//
// updatedAt is set to now (UTC); createdAt is never modified.
func (r *DeliveryRequest) Dispatch(driverID int64, notes string, now time.Time) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("driverId",
			fmt.Errorf("%d is not greater than 0", driverID))
	}

	newStatus, err := r.status.Dispatch()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.driverID = &driverID
	if notes != "" {
		r.driverNotes = notes
	}
	r.updatedAt = now.UTC()
	return nil
}

// setDeliveryID validates and sets the business key.
// This is a private method used only during construction.
func (r *DeliveryRequest) setDeliveryID(deliveryID string) error {
	if deliveryID == "" {
		return errs.NewValueIsRequiredError("deliveryId")
	}
	r.deliveryID = deliveryID
	return nil
}

// setOrderID validates and sets the order reference.
// This is a private method used only during construction.
func (r *DeliveryRequest) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	r.orderID = orderID
	return nil
}

// setPickup validates and sets the pickup location.
// This is a private method used only during construction.
func (r *DeliveryRequest) setPickup(pickup kernel.Location) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	r.pickup = pickup
	return nil
}

// setDropoff validates and sets the dropoff location.
// This is a private method used only during construction.
func (r *DeliveryRequest) setDropoff(dropoff kernel.Location) error {
	if err := dropoff.Validate(); err != nil {
		return err
	}
	r.dropoff = dropoff
	return nil
}

// setRoute validates and sets the waypoint sequence.
// This is a private method used only during construction.
func (r *DeliveryRequest) setRoute(route []kernel.Location) error {
	if len(route) == 0 {
		return errs.NewValueIsRequiredError("route")
	}
	for _, waypoint := range route {
		if err := waypoint.Validate(); err != nil {
			return err
		}
	}
	r.route = route
	return nil
}
