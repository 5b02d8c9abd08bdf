package analytics

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is returned when a time range ends before it starts.
	ErrInvalidRange = errors.New("analytics: start date after end date")

	// ErrStoreUnavailable wraps connection or query failures against the
	// underlying databases.
	ErrStoreUnavailable = errors.New("analytics: store unavailable")

	// ErrUnknownPlatform is returned for platform identifiers outside the
	// configured set.
	ErrUnknownPlatform = errors.New("analytics: unknown platform")
)

func storeErr(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
