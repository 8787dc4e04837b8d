package queries

import (
	"errors"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetStalePendingRequestsQueryIsNotConstructed = errors.New(
		"GetStalePendingRequestsQuery must be created via NewGetStalePendingRequestsQuery constructor",
	)
)

// GetStalePendingRequestsQuery retrieves pending delivery requests created
// before a cutoff instant. Used for operational visibility into requests no
// driver has been assigned to.
type GetStalePendingRequestsQuery struct {
	before time.Time

	guard guard.ConstructorGuard
}

// NewGetStalePendingRequestsQuery creates a query for pending requests older
// than the given cutoff. The cutoff must be non-zero.
func NewGetStalePendingRequestsQuery(before time.Time) (GetStalePendingRequestsQuery, error) {
	if before.IsZero() {
		return GetStalePendingRequestsQuery{}, errs.NewValueIsRequiredError("before")
	}

	return GetStalePendingRequestsQuery{
		before: before,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Before returns the cutoff instant.
func (q GetStalePendingRequestsQuery) Before() time.Time {
	return q.before
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStalePendingRequestsQueryIsNotConstructed if validation fails.
func (q GetStalePendingRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetStalePendingRequestsQueryIsNotConstructed)
}

// GetStalePendingRequestsQueryResponse identifies one stale pending request.
type GetStalePendingRequestsQueryResponse struct {
	DeliveryID string
	OrderID    string
	CreatedAt  time.Time
}
