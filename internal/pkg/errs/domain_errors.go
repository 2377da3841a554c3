package errs

import "errors"

// Error kinds shared across layers. Lower layers Mark their errors with one of
// these so the handler can pick a status code with errs.Is.
var (
	// User-correctable input problems (missing or malformed fields)
	ErrValidation = errors.New("validation error")
	// Unparseable query input such as a calendar date
	ErrInvalidInput = errors.New("invalid input")

	// Lookup errors
	ErrNotFound = errors.New("not found")

	// Authentication errors
	ErrUnauthorized = errors.New("unauthorized")

	// Booking ledger errors
	ErrSlotConflict = errors.New("slot conflict")

	// Video generation errors
	ErrUnsupportedProvider = errors.New("unsupported provider")
	ErrGeneration          = errors.New("generation error")

	// Payment errors
	ErrPaymentsDisabled = errors.New("payments disabled")
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
