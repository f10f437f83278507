package services

import (
	"context"
	"errors"
	"fmt"
)

// ErrStoreUnavailable wraps store round trips that timed out or were cut
// off, so handlers can answer with a generic failure instead of leaking
// driver detail.
var ErrStoreUnavailable = errors.New("task store unavailable")

// wrapStoreErr converts context expiry from a bounded store call into
// ErrStoreUnavailable and annotates everything else with the operation name.
func wrapStoreErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrStoreUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}
