package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/deliveryrequest"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetDeliveryRequestQueryIsNotConstructed = errors.New(
		"GetDeliveryRequestQuery must be created via NewGetDeliveryRequestQuery constructor",
	)
)

// GetDeliveryRequestQuery retrieves a single delivery request by its
// business identifier.
//
// Example:
//
//	query, err := NewGetDeliveryRequestQuery("d210")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetDeliveryRequestQueryHandler(db)
//	record, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown deliveryId
//	}
type GetDeliveryRequestQuery struct {
	deliveryID string

	guard guard.ConstructorGuard
}

// NewGetDeliveryRequestQuery creates a query for the given deliveryId.
// The identifier must be non-empty.
func NewGetDeliveryRequestQuery(deliveryID string) (GetDeliveryRequestQuery, error) {
	if deliveryID == "" {
		return GetDeliveryRequestQuery{}, errs.NewValueIsRequiredError("deliveryId")
	}

	return GetDeliveryRequestQuery{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// DeliveryID returns the requested business identifier.
func (q GetDeliveryRequestQuery) DeliveryID() string {
	return q.deliveryID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryRequestQueryIsNotConstructed if validation fails.
func (q GetDeliveryRequestQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryRequestQueryIsNotConstructed)
}

// GetDeliveryRequestQueryResponse is the full stored record of a delivery
// request, including the store-assigned identifier and both timestamps.
type GetDeliveryRequestQueryResponse struct {
	ID          kernel.UUID
	DeliveryID  string
	OrderID     string
	DriverID    *int64
	Pickup      kernel.Location
	Dropoff     kernel.Location
	Route       []kernel.Location
	Status      deliveryrequest.Status
	DriverNotes string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
