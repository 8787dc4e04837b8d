package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/deliveryrequest"

	"gorm.io/gorm"
)

// GetStalePendingRequestsQueryHandler retrieves pending requests that have
// waited for a driver longer than the caller's cutoff allows.
//
// Example:
//
//	handler := NewGetStalePendingRequestsQueryHandler(db)
//	query, _ := NewGetStalePendingRequestsQuery(time.Now().Add(-30 * time.Minute))
//
//	stale, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	for _, r := range stale {
//	    log.Printf("request %s pending since %s", r.DeliveryID, r.CreatedAt)
//	}
type GetStalePendingRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetStalePendingRequestsQueryHandler creates a handler for stale pending
// request queries. Requires a GORM database connection for query execution.
func NewGetStalePendingRequestsQueryHandler(db *gorm.DB) GetStalePendingRequestsQueryHandler {
	return GetStalePendingRequestsQueryHandler{db: db}
}

// Handle executes the query. Returns pending requests created before the
// cutoff, oldest first.
func (h GetStalePendingRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetStalePendingRequestsQuery,
) ([]GetStalePendingRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stale := make([]GetStalePendingRequestsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			delivery_id,
			order_id,
			created_at
		FROM delivery_requests
		WHERE status = ?
		AND created_at < ?
		ORDER BY created_at
	`, deliveryrequest.StatusPending, query.Before()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetStalePendingRequestsQueryResponse
		var createdAt time.Time

		err = rows.Scan(
			&resp.DeliveryID,
			&resp.OrderID,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		resp.CreatedAt = createdAt.UTC()
		stale = append(stale, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stale, nil
}
