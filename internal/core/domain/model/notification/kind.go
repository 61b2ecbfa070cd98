package notification

import (
	"fmt"

	"tours/internal/pkg/errs"
)

// Kind selects the template and recipient of a delivery.
type Kind string

const (
	CustomerConfirmation Kind = "customer_confirmation"
	AdminAlert           Kind = "admin_alert"
)

// BookingKinds lists the deliveries created for every new booking.
func BookingKinds() []Kind {
	return []Kind{CustomerConfirmation, AdminAlert}
}

func (k Kind) Validate() error {
	switch k {
	case CustomerConfirmation, AdminAlert:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a valid notification kind", string(k)))
	}
}

func (k Kind) String() string {
	return string(k)
}
