package tour

import (
	"errors"
	"time"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/pkg/errs"
)

const (
	NameMaxLength        = 200
	CountryMaxLength     = 100
	RegionMaxLength      = 100
	DescriptionMaxLength = 5000
)

var (
	// ErrTourIsNotConstructed is returned when a Tour was not created through
	// NewTour or RestoreTour.
	ErrTourIsNotConstructed = errors.New("Tour must be created via NewTour constructor")
)

// Tour is a bookable travel package. Its descriptive fields are immutable once
// created; bookings only reference it by id.
type Tour struct {
	id          uint
	name        string
	description string
	country     string
	region      string
	price       float64
	capacity    int
	active      bool
	locationIDs []uint
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewTour validates and creates an unsaved Tour. Every violated field is
// reported in the joined error.
func NewTour(
	name, description, country, region string,
	price float64,
	capacity int,
	active bool,
	locationIDs []uint,
) (*Tour, error) {
	t := &Tour{
		active:        active,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setName(name),
		t.setDescription(description),
		t.setCountry(country),
		t.setRegion(region),
		t.setPrice(price),
		t.setCapacity(capacity),
		t.setLocationIDs(locationIDs),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTour rebuilds a persisted Tour.
func RestoreTour(
	id uint,
	name, description, country, region string,
	price float64,
	capacity int,
	active bool,
	locationIDs []uint,
	createdAt, updatedAt time.Time,
) (*Tour, error) {
	t, err := NewTour(name, description, country, region, price, capacity, active, locationIDs)
	if err != nil {
		return nil, err
	}
	t.MarkPersisted(id, createdAt)
	t.updatedAt = updatedAt
	return t, nil
}

func (t *Tour) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTourIsNotConstructed
	}
	return nil
}

// MarkPersisted records the storage-assigned id and creation time.
func (t *Tour) MarkPersisted(id uint, createdAt time.Time) {
	t.id = id
	t.createdAt = createdAt
	if t.updatedAt.IsZero() {
		t.updatedAt = createdAt
	}
}

func (t *Tour) ID() uint {
	return t.id
}

func (t *Tour) Name() string {
	return t.name
}

func (t *Tour) Description() string {
	return t.description
}

func (t *Tour) Country() string {
	return t.country
}

func (t *Tour) Region() string {
	return t.region
}

func (t *Tour) Price() float64 {
	return t.price
}

func (t *Tour) Capacity() int {
	return t.capacity
}

func (t *Tour) IsActive() bool {
	return t.active
}

func (t *Tour) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Tour) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Tour) LocationIDs() []uint {
	return append([]uint(nil), t.locationIDs...)
}

func (t *Tour) setName(name string) (err error) {
	t.name, err = kernel.RequiredText("name", name, NameMaxLength)
	return err
}

func (t *Tour) setDescription(description string) (err error) {
	t.description, err = kernel.OptionalText("description", description, DescriptionMaxLength)
	return err
}

func (t *Tour) setCountry(country string) (err error) {
	t.country, err = kernel.RequiredText("country", country, CountryMaxLength)
	return err
}

func (t *Tour) setRegion(region string) (err error) {
	t.region, err = kernel.OptionalText("region", region, RegionMaxLength)
	return err
}

func (t *Tour) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", errors.New("must not be negative"))
	}
	t.price = price
	return nil
}

func (t *Tour) setCapacity(capacity int) error {
	if capacity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity", errors.New("must not be negative"))
	}
	t.capacity = capacity
	return nil
}

func (t *Tour) setLocationIDs(ids []uint) error {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			return errs.NewValueIsInvalidErrorWithCause("location_ids", errors.New("must contain positive ids"))
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	t.locationIDs = out
	return nil
}
