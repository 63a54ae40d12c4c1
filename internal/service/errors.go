package service

import (
	"errors"
	"fmt"
)

// User-facing status messages.
const (
	MessagePinned      = "Pinned! Thanks for raising your hand."
	MessageDemoLoaded  = "Loaded sample pins."
	MessageUnresolved  = "Couldn't resolve that ZIP right now. Try a different one or use 'Load demo pins'."
	MessageNameMissing = "Please enter your name."
	MessageEmailBad    = "Please enter a valid email."
	MessageZipShort    = "Enter a 5-digit ZIP."
	MessageSaveFailed  = "Couldn't save your pin. Please try again."
)

var (
	// ErrSubmissionInFlight is returned when Submit is called while another submission is still resolving.
	ErrSubmissionInFlight = errors.New("service: a submission is already in flight")

	// ErrDuplicateID is returned when an appended row reuses an id that is already stored.
	ErrDuplicateID = errors.New("service: submission id already stored")
)

// ValidationError describes a problem with user input. It never mutates state.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ResolutionError wraps a ZIP lookup failure. Its message is deliberately
// generic; the cause is kept for logging.
type ResolutionError struct {
	Zip string
	Err error
}

func (e *ResolutionError) Error() string {
	return MessageUnresolved
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// Detail renders the underlying cause for logs.
func (e *ResolutionError) Detail() string {
	return fmt.Sprintf("resolve %q: %v", e.Zip, e.Err)
}
