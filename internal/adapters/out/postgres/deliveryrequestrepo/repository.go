package deliveryrequestrepo

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/deliveryrequest"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormDeliveryRequestRepository implements DeliveryRequestRepository using GORM.
type GormDeliveryRequestRepository struct {
	db *gorm.DB
}

// NewGormDeliveryRequestRepository creates a new GORM delivery request repository.
func NewGormDeliveryRequestRepository(db *gorm.DB) *GormDeliveryRequestRepository {
	return &GormDeliveryRequestRepository{db: db}
}

// Add saves a new delivery request to the database, assigning the
// store-generated record identifier. A duplicate deliveryId surfaces as
// errs.ErrObjectAlreadyExists via the unique index.
func (r *GormDeliveryRequestRepository) Add(ctx context.Context, aggregate *deliveryrequest.DeliveryRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if dto.ID == uuid.Nil {
		dto.ID = uuid.New()
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("deliveryId", dto.DeliveryID, err)
		}
		return err
	}

	return nil
}

// GetByDeliveryID retrieves a delivery request by its business identifier.
func (r *GormDeliveryRequestRepository) GetByDeliveryID(
	ctx context.Context,
	deliveryID string,
) (*deliveryrequest.DeliveryRequest, error) {
	if deliveryID == "" {
		return nil, errs.NewValueIsRequiredError("deliveryId")
	}

	var dto DeliveryRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "delivery_id = ?", deliveryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryId", deliveryID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateDispatched assigns a driver to a pending request with a single
// conditional update. The pending requirement lives in the match filter, so
// the returned matched count is the caller's atomicity guarantee: a request
// dispatched concurrently matches nothing instead of being overwritten.
// Driver notes are only written when non-empty, keeping the stored notes
// otherwise.
func (r *GormDeliveryRequestRepository) UpdateDispatched(
	ctx context.Context,
	deliveryID string,
	driverID int64,
	notes string,
	now time.Time,
) (int64, error) {
	updates := map[string]any{
		"driver_id":  driverID,
		"status":     deliveryrequest.StatusDispatched.String(),
		"updated_at": now,
	}
	if notes != "" {
		updates["driver_notes"] = notes
	}

	result := r.db.WithContext(ctx).
		Model(&DeliveryRequestDTO{}).
		Where("delivery_id = ? AND status = ?", deliveryID, deliveryrequest.StatusPending.String()).
		Updates(updates)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// isUniqueViolation reports whether err is a unique constraint violation,
// either translated by GORM or raw from the postgres driver.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
