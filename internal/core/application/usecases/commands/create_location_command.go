package commands

import (
	"errors"

	"tours/internal/pkg/guard"
)

var ErrCreateLocationCommandIsNotConstructed = errors.New(
	"CreateLocationCommand must be created via NewCreateLocationCommand constructor",
)

type CreateLocationCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	country     string
	region      string

	guard guard.ConstructorGuard
}

func NewCreateLocationCommand(name, description, country, region string) CreateLocationCommand {
	return CreateLocationCommand{
		name:        name,
		description: description,
		country:     country,
		region:      region,
		guard:       guard.NewConstructorGuard(),
	}
}

func (c CreateLocationCommand) Validate() error {
	return c.guard.Validate(ErrCreateLocationCommandIsNotConstructed)
}

func (c CreateLocationCommand) Name() string {
	return c.name
}

func (c CreateLocationCommand) Description() string {
	return c.description
}

func (c CreateLocationCommand) Country() string {
	return c.country
}

func (c CreateLocationCommand) Region() string {
	return c.region
}
