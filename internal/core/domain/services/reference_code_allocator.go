package services

import (
	"context"
	"errors"
	"fmt"

	"tours/internal/core/domain/model/booking"
)

const DefaultReferenceCodeAttempts = 5

var ErrReferenceCodeExhausted = errors.New("could not allocate a unique reference code")

// ReferenceCodeChecker reports whether a code is already taken.
type ReferenceCodeChecker interface {
	ExistsReferenceCode(ctx context.Context, code booking.ReferenceCode) (bool, error)
}

// ReferenceCodeAllocator draws random codes until one is free or the attempt
// budget runs out.
type ReferenceCodeAllocator struct {
	generate    func() (booking.ReferenceCode, error)
	maxAttempts int
}

func NewReferenceCodeAllocator() ReferenceCodeAllocator {
	return NewReferenceCodeAllocatorWith(booking.NewRandomReferenceCode, DefaultReferenceCodeAttempts)
}

// NewReferenceCodeAllocatorWith uses generate as the code source.
func NewReferenceCodeAllocatorWith(generate func() (booking.ReferenceCode, error), maxAttempts int) ReferenceCodeAllocator {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return ReferenceCodeAllocator{generate: generate, maxAttempts: maxAttempts}
}

func (a ReferenceCodeAllocator) Allocate(ctx context.Context, checker ReferenceCodeChecker) (booking.ReferenceCode, error) {
	for range a.maxAttempts {
		code, err := a.generate()
		if err != nil {
			return "", err
		}

		taken, err := checker.ExistsReferenceCode(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check reference code %s: %w", code, err)
		}
		if !taken {
			return code, nil
		}
	}

	return "", fmt.Errorf("%w after %d attempts", ErrReferenceCodeExhausted, a.maxAttempts)
}
