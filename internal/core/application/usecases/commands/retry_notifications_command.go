package commands

import (
	"errors"
	"time"

	"tours/internal/pkg/errs"
	"tours/internal/pkg/guard"
)

const DefaultRetryBatchSize = 100

var ErrRetryNotificationsCommandIsNotConstructed = errors.New(
	"RetryNotificationsCommand must be created via NewRetryNotificationsCommand constructor",
)

// RetryNotificationsCommand re-schedules failed and stale pending deliveries.
type RetryNotificationsCommand struct { //nolint:recvcheck //using for validation
	staleAfter time.Duration
	batchSize  int

	guard guard.ConstructorGuard
}

func NewRetryNotificationsCommand(staleAfter time.Duration, batchSize int) (RetryNotificationsCommand, error) {
	var staleErr, batchErr error
	if staleAfter <= 0 {
		staleErr = errs.NewValueIsInvalidErrorWithCause("stale_after", errors.New("must be positive"))
	}
	if batchSize <= 0 {
		batchErr = errs.NewValueIsInvalidErrorWithCause("batch_size", errors.New("must be positive"))
	}
	if err := errors.Join(staleErr, batchErr); err != nil {
		return RetryNotificationsCommand{}, err
	}

	return RetryNotificationsCommand{
		staleAfter: staleAfter,
		batchSize:  batchSize,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RetryNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrRetryNotificationsCommandIsNotConstructed)
}

func (c RetryNotificationsCommand) StaleAfter() time.Duration {
	return c.staleAfter
}

func (c RetryNotificationsCommand) BatchSize() int {
	return c.batchSize
}
