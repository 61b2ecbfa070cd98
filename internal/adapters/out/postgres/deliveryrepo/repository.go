package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"tours/internal/core/domain/model/notification"
	"tours/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db *gorm.DB
}

func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *notification.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("Booking").Create(&dto).Error; err != nil {
		return err
	}

	aggregate.MarkPersisted(dto.ID, dto.CreatedAt)
	return nil
}

// Update writes the send state of an existing delivery.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *notification.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":     dto.Status,
			"attempts":   dto.Attempts,
			"last_error": dto.LastError,
			"updated_at": dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", dto.ID)
	}
	return nil
}

func (r *GormDeliveryRepository) Get(ctx context.Context, id uint) (*notification.Delivery, error) {
	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListRetryable returns failed deliveries and pending ones created before
// staleBefore, both below maxAttempts, least recently touched first.
func (r *GormDeliveryRepository) ListRetryable(
	ctx context.Context,
	maxAttempts int,
	staleBefore time.Time,
	limit int,
) ([]*notification.Delivery, error) {
	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).
		Where("attempts < ?", maxAttempts).
		Where("status = ? OR (status = ? AND created_at < ?)",
			notification.Failed.String(), notification.Pending.String(), staleBefore).
		Order("updated_at, id").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	deliveries := make([]*notification.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, nil
}
