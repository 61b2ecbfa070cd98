package bookingrepo

import (
	"context"
	"errors"
	"fmt"

	"tours/internal/core/domain/model/booking"
	"tours/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolation pq.ErrorCode = "23505"

var ErrDuplicateReferenceCode = errors.New("reference code is already in use")

// GormBookingRepository implements ports.BookingRepository using GORM.
type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// Add inserts the booking. A concurrent insert of the same reference code is
// reported as ErrDuplicateReferenceCode.
func (r *GormBookingRepository) Add(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("Tour").Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateReferenceCode, dto.ReferenceCode)
		}
		return err
	}

	aggregate.MarkPersisted(dto.ID, dto.CreatedAt)
	return nil
}

func (r *GormBookingRepository) Get(ctx context.Context, id uint) (*booking.Booking, error) {
	var dto BookingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("booking", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormBookingRepository) ExistsReferenceCode(ctx context.Context, code booking.ReferenceCode) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Where("reference_code = ?", code.String()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
