package commands

import (
	"errors"

	"tours/internal/pkg/errs"
	"tours/internal/pkg/guard"
)

var ErrCreateTourCommandIsNotConstructed = errors.New(
	"CreateTourCommand must be created via NewCreateTourCommand constructor",
)

// CreateTourCommand carries a new catalog tour. Field content is validated by
// the tour aggregate; the constructor only rejects malformed location ids.
type CreateTourCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	country     string
	region      string
	price       float64
	capacity    int
	active      bool
	locationIDs []uint

	guard guard.ConstructorGuard
}

func NewCreateTourCommand(
	name, description, country, region string,
	price float64,
	capacity int,
	active bool,
	locationIDs []int,
) (CreateTourCommand, error) {
	ids := make([]uint, 0, len(locationIDs))
	for _, id := range locationIDs {
		if id <= 0 {
			return CreateTourCommand{}, errs.NewValidationError(errs.FieldError{
				Field:  "location_ids",
				Reason: "must contain positive ids",
			})
		}
		ids = append(ids, uint(id))
	}

	return CreateTourCommand{
		name:        name,
		description: description,
		country:     country,
		region:      region,
		price:       price,
		capacity:    capacity,
		active:      active,
		locationIDs: ids,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateTourCommand) Validate() error {
	return c.guard.Validate(ErrCreateTourCommandIsNotConstructed)
}

func (c CreateTourCommand) Name() string {
	return c.name
}

func (c CreateTourCommand) Description() string {
	return c.description
}

func (c CreateTourCommand) Country() string {
	return c.country
}

func (c CreateTourCommand) Region() string {
	return c.region
}

func (c CreateTourCommand) Price() float64 {
	return c.price
}

func (c CreateTourCommand) Capacity() int {
	return c.capacity
}

func (c CreateTourCommand) Active() bool {
	return c.active
}

func (c CreateTourCommand) LocationIDs() []uint {
	return append([]uint(nil), c.locationIDs...)
}
