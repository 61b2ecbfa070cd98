package commands

import (
	"errors"

	"tours/internal/pkg/errs"
	"tours/internal/pkg/guard"
)

var ErrDispatchNotificationCommandIsNotConstructed = errors.New(
	"DispatchNotificationCommand must be created via NewDispatchNotificationCommand constructor",
)

// DispatchNotificationCommand sends one notification delivery.
type DispatchNotificationCommand struct { //nolint:recvcheck //using for validation
	deliveryID uint

	guard guard.ConstructorGuard
}

func NewDispatchNotificationCommand(deliveryID uint) (DispatchNotificationCommand, error) {
	if deliveryID == 0 {
		return DispatchNotificationCommand{}, errs.NewValueIsRequiredError("delivery_id")
	}
	return DispatchNotificationCommand{deliveryID: deliveryID, guard: guard.NewConstructorGuard()}, nil
}

func (c DispatchNotificationCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNotificationCommandIsNotConstructed)
}

func (c DispatchNotificationCommand) DeliveryID() uint {
	return c.deliveryID
}
