package domain

import "errors"

// Sentinel errors for the purchase core. Handlers match these with errors.Is
// and translate them to HTTP status codes.
var (
	ErrCreditNotFound    = errors.New("marketplace: credit not found")
	ErrInvalidQuantity   = errors.New("marketplace: quantity must be a positive integer")
	ErrInsufficientStock = errors.New("marketplace: insufficient quantity available")
	ErrUnauthenticated   = errors.New("marketplace: invalid authentication credentials")
	ErrForbidden         = errors.New("marketplace: access forbidden")
	ErrIntegrityFailure  = errors.New("marketplace: transaction hash mismatch")
)
