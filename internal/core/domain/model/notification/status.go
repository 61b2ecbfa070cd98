package notification

import (
	"fmt"

	"tours/internal/pkg/errs"
)

type Status string

const (
	Pending Status = "pending"
	Sent    Status = "sent"
	Failed  Status = "failed"
)

func (s Status) Validate() error {
	switch s {
	case Pending, Sent, Failed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid delivery status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}
