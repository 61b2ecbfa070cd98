// Package location provides the Location aggregate: a named place in a country
// that tours may visit.
package location

import (
	"errors"
	"time"

	"tours/internal/core/domain/model/kernel"
)

const (
	NameMaxLength        = 200
	CountryMaxLength     = 100
	RegionMaxLength      = 100
	DescriptionMaxLength = 5000
)

var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

type Location struct {
	id          uint
	name        string
	description string
	country     string
	region      string
	createdAt   time.Time

	isConstructed bool
}

// NewLocation validates and creates an unsaved Location.
func NewLocation(name, description, country, region string) (*Location, error) {
	l := &Location{isConstructed: true}

	if err := errors.Join(
		l.setName(name),
		l.setDescription(description),
		l.setCountry(country),
		l.setRegion(region),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLocation rebuilds a persisted Location.
func RestoreLocation(id uint, name, description, country, region string, createdAt time.Time) (*Location, error) {
	l, err := NewLocation(name, description, country, region)
	if err != nil {
		return nil, err
	}
	l.MarkPersisted(id, createdAt)
	return l, nil
}

func (l *Location) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationIsNotConstructed
	}
	return nil
}

// MarkPersisted records the storage-assigned id and creation time.
func (l *Location) MarkPersisted(id uint, createdAt time.Time) {
	l.id = id
	l.createdAt = createdAt
}

func (l *Location) ID() uint {
	return l.id
}

func (l *Location) Name() string {
	return l.name
}

func (l *Location) Description() string {
	return l.description
}

func (l *Location) Country() string {
	return l.country
}

func (l *Location) Region() string {
	return l.region
}

func (l *Location) CreatedAt() time.Time {
	return l.createdAt
}

func (l *Location) setName(name string) (err error) {
	l.name, err = kernel.RequiredText("name", name, NameMaxLength)
	return err
}

func (l *Location) setDescription(description string) (err error) {
	l.description, err = kernel.OptionalText("description", description, DescriptionMaxLength)
	return err
}

func (l *Location) setCountry(country string) (err error) {
	l.country, err = kernel.RequiredText("country", country, CountryMaxLength)
	return err
}

func (l *Location) setRegion(region string) (err error) {
	l.region, err = kernel.OptionalText("region", region, RegionMaxLength)
	return err
}
