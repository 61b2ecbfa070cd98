package kernel

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"tours/internal/pkg/errs"
	"tours/internal/pkg/guard"
)

const emailMaxLength = 254

var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("email must be created via NewEmail")

// Email is a bare address such as "john@example.com"; display names are rejected.
type Email struct { //nolint:recvcheck //using for validation
	address string
	guard   guard.ConstructorGuard
}

func NewEmail(paramName, raw string) (Email, error) {
	address := strings.TrimSpace(raw)
	if address == "" {
		return Email{}, errs.NewValueIsRequiredError(paramName)
	}
	if len(address) > emailMaxLength {
		return Email{}, errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("must be at most %d characters", emailMaxLength))
	}

	parsed, err := mail.ParseAddress(address)
	if err != nil || parsed.Address != address || parsed.Name != "" {
		return Email{}, errs.NewValueIsInvalidErrorWithCause(paramName, errors.New("is not a valid email address"))
	}
	if at := strings.LastIndex(address, "@"); !strings.Contains(address[at+1:], ".") {
		return Email{}, errs.NewValueIsInvalidErrorWithCause(paramName, errors.New("domain must contain a dot"))
	}

	return Email{address: address, guard: guard.NewConstructorGuard()}, nil
}

func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}

func (e Email) String() string {
	return e.address
}
