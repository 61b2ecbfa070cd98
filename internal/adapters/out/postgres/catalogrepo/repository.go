package catalogrepo

import (
	"context"
	"errors"

	"tours/internal/core/domain/model/location"
	"tours/internal/core/domain/model/tour"
	"tours/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTourRepository implements ports.TourRepository using GORM.
type GormTourRepository struct {
	db *gorm.DB
}

func NewGormTourRepository(db *gorm.DB) *GormTourRepository {
	return &GormTourRepository{db: db}
}

// Add inserts the tour row and its location links.
func (r *GormTourRepository) Add(ctx context.Context, aggregate *tour.Tour) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := tourFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	aggregate.MarkPersisted(dto.ID, dto.CreatedAt)
	return nil
}

// Get loads a tour whether or not it is active.
func (r *GormTourRepository) Get(ctx context.Context, id uint) (*tour.Tour, error) {
	var dto TourDTO
	err := r.db.WithContext(ctx).
		Preload("Locations", func(db *gorm.DB) *gorm.DB {
			return db.Order("visit_order")
		}).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tour", id)
		}
		return nil, err
	}

	return tourToDomain(dto)
}

// GormLocationRepository implements ports.LocationRepository using GORM.
type GormLocationRepository struct {
	db *gorm.DB
}

func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

func (r *GormLocationRepository) Add(ctx context.Context, aggregate *location.Location) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := locationFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	aggregate.MarkPersisted(dto.ID, dto.CreatedAt)
	return nil
}

// FindMissing keeps the order of ids in its result.
func (r *GormLocationRepository) FindMissing(ctx context.Context, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var found []uint
	if err := r.db.WithContext(ctx).
		Model(&LocationDTO{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error; err != nil {
		return nil, err
	}

	present := make(map[uint]struct{}, len(found))
	for _, id := range found {
		present[id] = struct{}{}
	}

	var missing []uint
	for _, id := range ids {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
