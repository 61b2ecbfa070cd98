package ports

import (
	"context"
	"time"

	"tours/internal/core/domain/model/notification"
)

// DeliveryRepository persists notification deliveries.
type DeliveryRepository interface {
	Add(ctx context.Context, aggregate *notification.Delivery) error
	Update(ctx context.Context, aggregate *notification.Delivery) error

	// Get returns a delivery by id, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id uint) (*notification.Delivery, error)

	// ListRetryable returns up to limit deliveries below maxAttempts that are
	// either Failed or Pending since before staleBefore, oldest first.
	ListRetryable(ctx context.Context, maxAttempts int, staleBefore time.Time, limit int) ([]*notification.Delivery, error)
}
