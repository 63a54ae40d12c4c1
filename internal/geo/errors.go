package geo

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no place is known for a postal code.
var ErrNotFound = errors.New("geo: postal code not found")

// LookupError reports a failed remote lookup: transport errors, unexpected
// statuses, undecodable bodies, or an open circuit breaker.
type LookupError struct {
	Zip string
	Err error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("geo: lookup %q: %v", e.Zip, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
