package errs

import "errors"

// Failure taxonomy shared by every ledger operation. Domain packages declare
// their own specific sentinels and mark them with one of these.
var (
	// Malformed or out-of-range input
	ErrValidation = errors.New("validation error")
	// Referenced unit, space or slot does not exist
	ErrNotFound = errors.New("not found")
	// Space/time overlap or duplicate registration
	ErrConflict = errors.New("conflict")
	// Attached amount missing, zero or below the required price
	ErrPayment = errors.New("payment error")
	// Settlement before the booked window has elapsed
	ErrTooEarly = errors.New("too early")
	// Settlement of a slot that was already paid out
	ErrAlreadySettled = errors.New("already settled")
	// Caller is not allowed to use the referenced record
	ErrForbidden = errors.New("forbidden")

	// Idempotency errors
	ErrIdempotencyKeyReused = errors.New("idempotency key reused with a different request")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// Code returns the stable, machine-readable code of the taxonomy entry err
// belongs to.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case Is(err, ErrAlreadySettled):
		return "ALREADY_SETTLED"
	case Is(err, ErrTooEarly):
		return "TOO_EARLY"
	case Is(err, ErrPayment):
		return "PAYMENT_ERROR"
	case Is(err, ErrNotFound):
		return "NOT_FOUND"
	case Is(err, ErrForbidden):
		return "FORBIDDEN"
	case Is(err, ErrConflict), Is(err, ErrIdempotencyKeyReused):
		return "CONFLICT"
	case Is(err, ErrValidation):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL"
	}
}
