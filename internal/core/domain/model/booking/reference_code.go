package booking

import (
	"crypto/rand"
	"fmt"
	"io"
	"regexp"

	"tours/internal/pkg/errs"
)

const (
	referenceCodePrefix   = "BKG-"
	referenceCodeLength   = 6
	referenceCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var referenceCodePattern = regexp.MustCompile(`^BKG-[A-Z0-9]{6}$`)

// ReferenceCode is the human-facing booking identifier, e.g. "BKG-7QX2MD".
type ReferenceCode string

func ParseReferenceCode(s string) (ReferenceCode, error) {
	if !referenceCodePattern.MatchString(s) {
		return "", errs.NewValueIsInvalidErrorWithCause("reference_code",
			fmt.Errorf("%q does not match BKG-XXXXXX", s))
	}
	return ReferenceCode(s), nil
}

// NewRandomReferenceCode draws a code from crypto/rand.
func NewRandomReferenceCode() (ReferenceCode, error) {
	return NewReferenceCodeFrom(rand.Reader)
}

// NewReferenceCodeFrom draws a code from r using rejection sampling so every
// alphabet symbol is equally likely.
func NewReferenceCodeFrom(r io.Reader) (ReferenceCode, error) {
	const limit = 256 - 256%len(referenceCodeAlphabet)

	code := make([]byte, 0, len(referenceCodePrefix)+referenceCodeLength)
	code = append(code, referenceCodePrefix...)

	buf := make([]byte, referenceCodeLength*2)
	for len(code) < cap(code) {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			code = append(code, referenceCodeAlphabet[int(b)%len(referenceCodeAlphabet)])
			if len(code) == cap(code) {
				break
			}
		}
	}

	return ReferenceCode(code), nil
}

func (c ReferenceCode) Validate() error {
	_, err := ParseReferenceCode(string(c))
	return err
}

func (c ReferenceCode) String() string {
	return string(c)
}
