package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrToolNotFound  = errors.New("external tool not found")
	ErrInputNotFound = errors.New("input not found")
	ErrOutputExists  = errors.New("output already exists")
	ErrUnknownLevel  = errors.New("unknown compression level")
	ErrProbe         = errors.New("probe failed")
	ErrSubprocess    = errors.New("subprocess failed")
	ErrValidation    = errors.New("validation error")
	ErrInterrupted   = errors.New("interrupted")
	ErrConfig        = errors.New("invalid configuration")
)

// Wrap builds an error message that includes operation context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrSubprocess
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsUserFacing reports whether err carries one of the markers above. Anything
// else is an unexpected internal failure.
func IsUserFacing(err error) bool {
	for _, marker := range []error{
		ErrToolNotFound, ErrInputNotFound, ErrOutputExists, ErrUnknownLevel,
		ErrProbe, ErrSubprocess, ErrValidation, ErrInterrupted, ErrConfig,
	} {
		if errors.Is(err, marker) {
			return true
		}
	}
	return false
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "operation failed"
	}
	return strings.Join(parts, ": ")
}
