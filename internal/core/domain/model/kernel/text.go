package kernel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"tours/internal/pkg/errs"
)

// RequiredText trims value and rejects it when empty or longer than maxLength runes.
func RequiredText(paramName, value string, maxLength int) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", errs.NewValueIsRequiredError(paramName)
	}
	return OptionalText(paramName, trimmed, maxLength)
}

// OptionalText trims value and rejects it when longer than maxLength runes.
func OptionalText(paramName, value string, maxLength int) (string, error) {
	trimmed := strings.TrimSpace(value)
	if n := utf8.RuneCountInString(trimmed); n > maxLength {
		return "", errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("must be at most %d characters, got %d", maxLength, n))
	}
	return trimmed, nil
}
