package errs

import "errors"

// Sentinels shared by the usecase layers of both services
var (
	// Parking errors
	ErrInvalidParkingSpace = errors.New("invalid parking space")
	ErrInvalidStatusEvent  = errors.New("invalid status event")

	// Payment errors
	ErrPaymentFailed = errors.New("payment failed")
	ErrRefundFailed  = errors.New("refund failed")
	// ErrGatewayTimeout marks a gateway call abandoned before it answered; the charge may still have been captured
	ErrGatewayTimeout = errors.New("payment gateway timed out")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyKeyReused   = errors.New("idempotency key reused with a different request")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
